// Package flagsrcgen generates the input-source wrapper declarations
// that extend the cli flag types with deferred flag-set capture.
package flagsrcgen

import (
	"io"

	"github.com/altsrc-go/flagsrc-gen/config"
	"github.com/altsrc-go/flagsrc-gen/generator"
)

// Version of the flagsrc-gen module
const Version = "v0.1.0"

// Quick constructor functions for common use cases

// NewGenerator creates a generator over the default kind list with
// default options
func NewGenerator() *generator.Generator {
	return generator.NewGenerator(config.AllKinds(), generator.Options{})
}

// Render is a convenience function producing the generated source for
// the default kind list
func Render() ([]byte, error) {
	return NewGenerator().Render()
}

// Generate is a convenience function writing the generated source for
// the default kind list to w
func Generate(w io.Writer) error {
	return NewGenerator().Generate(w)
}

// GenerateFile is a convenience function atomically writing the
// generated source for the default kind list to path
func GenerateFile(path string) error {
	return NewGenerator().GenerateFile(path)
}
