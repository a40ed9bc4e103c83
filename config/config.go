// Package config declares the registry of cli flag kinds that support
// input-source wrapping, plus validation helpers for user-supplied
// kind lists.
package config

import "unicode"

// FlagKind identifies one flag variant of the wrapped cli library.
// Its value is the bare type-name fragment ("Bool", "IntSlice", ...)
// that the generator concatenates into {Kind}Flag and New{Kind}Flag.
type FlagKind string

// Only kinds whose cli flag types provide an implementation of
// FlagInputSourceExtension belong here; keep the list sorted
// alphabetically.
const (
	KindBool        FlagKind = "Bool"
	KindDuration    FlagKind = "Duration"
	KindFloat64     FlagKind = "Float64"
	KindGeneric     FlagKind = "Generic"
	KindInt         FlagKind = "Int"
	KindIntSlice    FlagKind = "IntSlice"
	KindPath        FlagKind = "Path"
	KindString      FlagKind = "String"
	KindStringSlice FlagKind = "StringSlice"
)

// AllKinds returns the default kind list, in alphabetical order
func AllKinds() []FlagKind {
	return []FlagKind{
		KindBool,
		KindDuration,
		KindFloat64,
		KindGeneric,
		KindInt,
		KindIntSlice,
		KindPath,
		KindString,
		KindStringSlice,
	}
}

// KindsSorted reports whether kinds follows the alphabetical ordering
// convention used for the default list
func KindsSorted(kinds []FlagKind) bool {
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1] > kinds[i] {
			return false
		}
	}
	return true
}

// KindError represents an invalid flag kind name
type KindError struct {
	Kind    FlagKind
	Message string
}

func (e *KindError) Error() string {
	return "invalid flag kind " + string(e.Kind) + ": " + e.Message
}

// Validate checks that the kind is usable as an exported identifier
// fragment: non-empty, leading upper-case letter, letters and digits
// only. The generator itself never calls this; it is for front ends
// that accept kind names from the outside.
func (k FlagKind) Validate() error {
	if k == "" {
		return &KindError{Kind: k, Message: "empty name"}
	}
	for i, r := range k {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return &KindError{Kind: k, Message: "must start with an upper-case letter"}
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &KindError{Kind: k, Message: "must contain only letters and digits"}
		}
	}
	return nil
}

// ValidateKinds validates each entry of a kind list, returning the
// first failure
func ValidateKinds(kinds []FlagKind) error {
	for _, kind := range kinds {
		if err := kind.Validate(); err != nil {
			return err
		}
	}
	return nil
}
