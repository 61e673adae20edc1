package macro

import (
	"errors"

	"github.com/ezrec/macropp/translate"
)

var f = translate.From

var (
	// Definition errors
	ErrMacroSyntax     = errors.New(f("MACRO header syntax"))
	ErrMacroNesting    = errors.New(f("MACRO in MACRO prohibited"))
	ErrMacroDuplicate  = errors.New(f("MACRO duplicated"))
	ErrMacroLonely     = errors.New(f("MACRO without MEND"))
	ErrMacroLonelyEndm = errors.New(f("MEND without MACRO"))
	ErrTableFrozen     = errors.New(f("macro table frozen"))

	// Expansion errors
	ErrMacroArgs      = errors.New(f("parameter count mismatch"))
	ErrRecursionLimit = errors.New(f("recursion limit exceeded"))
)

// ErrModeInvalid is an unknown substitution mode name.
type ErrModeInvalid string

func (err ErrModeInvalid) Error() string {
	return f("'%v' is not a substitution mode", string(err))
}

// ErrSyntax locates an error at a line of the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMacro locates an error at a line of a macro body.
type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
