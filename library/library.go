// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package library loads predefined macros from Starlark files.
//
// A library file calls define() for each macro:
//
//	define("PUSH", ["X"], ["DEC SP", "MOV [SP], X"])
//	for r in ["R1", "R2"]:
//	    define("CLR_" + r, body = "XOR %s, %s" % (r, r))
//
// Parameters may also be given as a header style string ("A, B"), and the
// body as a single string of newline separated lines.
package library

import (
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/macropp/macro"
)

// Library collects macros from Starlark source into a Table.
type Library struct {
	Verbose bool         // If set, logs each defined macro.
	Strict  bool         // If set, a duplicated macro name is an error.
	Table   *macro.Table // Table of defined macros. Allocated if nil.
}

// Load executes a library file. If src is nil the file is read, otherwise
// src is the source text, as for starlark.ExecFileOptions.
func (lib *Library) Load(filename string, src any) (err error) {
	defer func() {
		if err != nil {
			err = &ErrLibrary{File: filename, Err: err}
		}
	}()

	if lib.Table == nil {
		lib.Table = macro.NewTable()
	}

	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	pred := starlark.StringDict{
		"MACRO":   starlark.String(macro.KeywordMacro),
		"MEND":    starlark.String(macro.KeywordMend),
		"define":  starlark.NewBuiltin("define", lib.define),
		"defined": starlark.NewBuiltin("defined", lib.defined),
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	return
}

// define(name, params=None, body=None) adds a macro.
func (lib *Library) define(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var params, body starlark.Value
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "params?", &params, "body?", &body)
	if err != nil {
		return nil, err
	}

	if len(strings.Fields(name)) != 1 {
		return nil, ErrLibrarySyntax
	}

	m := &macro.Macro{
		Name:   strings.TrimSpace(name),
		LineNo: int(thread.CallFrame(1).Pos.Line),
	}

	m.Params, err = stringList(params, ",")
	if err != nil {
		return nil, err
	}
	for _, param := range m.Params {
		if len(param) == 0 {
			return nil, ErrLibrarySyntax
		}
	}

	m.Lines, err = stringList(body, "\n")
	if err != nil {
		return nil, err
	}

	if lib.Strict {
		_, ok := lib.Table.Lookup(m.Name)
		if ok {
			return nil, macro.ErrMacroDuplicate
		}
	}

	_, err = lib.Table.Define(m)
	if err != nil {
		return nil, err
	}

	if lib.Verbose {
		log.Printf("%v:%v: %v %v (%d lines)", thread.Name, m.LineNo, macro.KeywordMacro, m.Header(), len(m.Lines))
	}

	return starlark.None, nil
}

// defined(name) reports if a macro is already defined.
func (lib *Library) defined(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	_, ok := lib.Table.Lookup(name)
	return starlark.Bool(ok), nil
}

// stringList converts a string, split on sep, or an iterable of strings
// into a list of trimmed strings.
func stringList(value starlark.Value, sep string) (list []string, err error) {
	switch value := value.(type) {
	case nil, starlark.NoneType:
		return
	case starlark.String:
		text := strings.Trim(string(value), "\n")
		if len(strings.TrimSpace(text)) == 0 {
			return
		}
		for _, item := range strings.Split(text, sep) {
			list = append(list, strings.TrimSpace(item))
		}
	case starlark.Iterable:
		iter := value.Iterate()
		defer iter.Done()
		var item starlark.Value
		for iter.Next(&item) {
			str, ok := starlark.AsString(item)
			if !ok {
				err = ErrLibrarySyntax
				return
			}
			list = append(list, strings.TrimSpace(str))
		}
	default:
		err = ErrLibrarySyntax
	}

	return
}
