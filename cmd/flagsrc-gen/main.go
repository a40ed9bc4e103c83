// Command flagsrc-gen emits the wrapper flag types that implement
// FlagInputSourceExtension, one per supported cli flag kind. Output
// goes to stdout unless --output is given.
package main

import (
	"fmt"
	"os"

	flagsrcgen "github.com/altsrc-go/flagsrc-gen"
	"github.com/altsrc-go/flagsrc-gen/config"
	"github.com/altsrc-go/flagsrc-gen/generator"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "flagsrc-gen",
		Usage:   "generate input-source wrapper types for cli flags",
		Version: flagsrcgen.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write generated source to `FILE` instead of stdout",
			},
			&cli.StringFlag{
				Name:  "package",
				Value: generator.DefaultPackageName,
				Usage: "package clause of the generated file",
			},
			&cli.StringFlag{
				Name:  "cli-import",
				Value: generator.DefaultCLIImportPath,
				Usage: "import path of the wrapped flag library",
			},
			&cli.StringFlag{
				Name:  "tool",
				Value: generator.DefaultTool,
				Usage: "tool name recorded in the generated-by header",
			},
			&cli.StringSliceFlag{
				Name:  "kind",
				Usage: "generate only the given flag `KIND` (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-format",
				Usage: "skip the gofmt pass on the generated source",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "kinds",
				Usage:  "list the default flag kinds",
				Action: listKinds,
			},
		},
	}
}

// newLogger builds a stderr console logger so stdout stays clean for
// the generated source.
func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func run(c *cli.Context) error {
	logger := newLogger(c)

	kinds := config.AllKinds()
	if names := c.StringSlice("kind"); len(names) > 0 {
		kinds = make([]config.FlagKind, 0, len(names))
		for _, name := range names {
			kinds = append(kinds, config.FlagKind(name))
		}
		if err := config.ValidateKinds(kinds); err != nil {
			return err
		}
		if !config.KindsSorted(kinds) {
			logger.Warn().Msg("kind list is not sorted alphabetically")
		}
	}

	gen := generator.NewGenerator(kinds, generator.Options{
		PackageName:   c.String("package"),
		CLIImportPath: c.String("cli-import"),
		Tool:          c.String("tool"),
		SkipFormat:    c.Bool("no-format"),
	})

	if output := c.String("output"); output != "" {
		logger.Debug().Str("output", output).Int("kinds", len(kinds)).Msg("generating wrapper types")
		return gen.GenerateFile(output)
	}

	logger.Debug().Int("kinds", len(kinds)).Msg("generating wrapper types to stdout")
	return gen.Generate(c.App.Writer)
}

func listKinds(c *cli.Context) error {
	for _, kind := range config.AllKinds() {
		fmt.Fprintln(c.App.Writer, kind)
	}
	return nil
}
