package library

import (
	"errors"

	"github.com/ezrec/macropp/translate"
)

var f = translate.From

var (
	ErrLibrarySyntax = errors.New(f("define() syntax"))
)

// ErrLibrary locates an error in a macro library file.
type ErrLibrary struct {
	File string
	Err  error
}

func (err *ErrLibrary) Error() string {
	return f("library %v: %v", err.File, err.Err)
}

func (err *ErrLibrary) Unwrap() error {
	return err.Err
}
