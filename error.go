package uriref

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/uriref/grammar"
	"github.com/ghettovoice/uriref/internal/errorutil"
)

// Error is a string type that implements the error interface.
type Error = errorutil.Error

const (
	// ErrEmptyInput is returned when an empty string is parsed.
	ErrEmptyInput Error = "empty input"
	// ErrNotURI is returned when an input matches neither the absolute
	// nor the relative reference grammar.
	ErrNotURI Error = "not a URI reference"
)

// ErrUnresolvableFragment reports a grammar table entry that can never
// resolve. It only occurs during grammar assembly, never per input.
const ErrUnresolvableFragment = grammar.ErrUnresolvableFragment

func newNotURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrNotURI, args...) //errtrace:skip
}
