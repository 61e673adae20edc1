// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"log"
	"slices"
	"strings"
)

// DefaultMaxDepth is the nesting limit used when Expander.MaxDepth is zero.
const DefaultMaxDepth = 256

// Expander is the second pass. It replaces invocations of the macros of a
// Table with their substituted bodies.
type Expander struct {
	Verbose  bool   // If set, verbosely logs each expansion.
	Strict   bool   // If set, parameter count mismatches are errors.
	Mode     Mode   // Parameter substitution mode.
	MaxDepth int    // Maximum nesting of invocations. 0 is DefaultMaxDepth.
	Table    *Table // Macros to expand.
}

// Expand expands all lines, in order.
func (exp *Expander) Expand(lines []string) (out []string, err error) {
	for n, line := range lines {
		out, err = exp.expandLine(out, line, n+1)
		if err != nil {
			return
		}
	}

	return
}

// ExpandLine expands a single line. lineno is only used to locate errors.
func (exp *Expander) ExpandLine(line string, lineno int) (out []string, err error) {
	return exp.expandLine(nil, line, lineno)
}

// expandLine appends the expansion of line to out.
func (exp *Expander) expandLine(out []string, line string, lineno int) ([]string, error) {
	out, err := exp.expand(out, nil, line)
	if err != nil {
		err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
	}
	return out, err
}

// expand appends the expansion of line to out. active holds the names of
// the macros being expanded; a line invoking one of them is not expanded
// again, which terminates self-referencing macros.
func (exp *Expander) expand(out []string, active []string, line string) ([]string, error) {
	words := strings.Fields(line)
	if len(words) == 0 || exp.Table == nil {
		return append(out, line), nil
	}

	macro, ok := exp.Table.Lookup(words[0])
	if !ok || slices.Contains(active, macro.Name) {
		return append(out, line), nil
	}

	maxDepth := exp.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if len(active) >= maxDepth {
		return out, ErrRecursionLimit
	}

	args := splitParams(words[1:])
	if exp.Strict && len(args) != len(macro.Params) {
		return out, &ErrMacro{Macro: macro.Name, Line: macro.LineNo, Err: ErrMacroArgs}
	}

	if exp.Verbose {
		log.Printf("%vexpand %v %q", strings.Repeat("  ", len(active)), macro.Name, args)
	}

	active = append(active, macro.Name)
	for n, body := range macro.Lines {
		text := exp.Mode.Substitute(body, macro.Params, args)

		var err error
		out, err = exp.expand(out, active, text)
		if err != nil {
			return out, &ErrMacro{Macro: macro.Name, Line: macro.LineNo + 1 + n, Err: err}
		}
	}

	return out, nil
}
