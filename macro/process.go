// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"io"
	"iter"
	"log"

	"github.com/ezrec/macropp/internal"
)

// Processor runs both passes of the preprocessor.
type Processor struct {
	Verbose  bool   // If set, verbosely logs the preprocessor actions.
	Strict   bool   // If set, malformed input is reported as an error.
	Mode     Mode   // Parameter substitution mode.
	MaxDepth int    // Maximum nesting of invocations. 0 is DefaultMaxDepth.
	Library  *Table // Predefined macros, copied before each run.

	Table *Table // Frozen macro table of the last run.
}

// Process collects the macro definitions of lines, and returns the expanded
// residual stream.
func (proc *Processor) Process(lines []string) (out []string, err error) {
	table := NewTable()
	if proc.Library != nil {
		table = proc.Library.Clone()
	}

	col := &Collector{Strict: proc.Strict, Table: table}
	residual, err := col.Collect(lines)
	if err != nil {
		return
	}
	table.Freeze()
	proc.Table = table

	if proc.Verbose {
		if m, lineno, ok := col.Unterminated(); ok {
			name := "?"
			if m != nil {
				name = m.Name
			}
			log.Printf("%v: unterminated %v %v dropped", lineno, KeywordMacro, name)
		}
		for _, m := range table.All() {
			log.Printf("%v: %v %v (%d lines)", m.LineNo, KeywordMacro, m.Header(), len(m.Lines))
		}
	}

	exp := &Expander{
		Verbose:  proc.Verbose,
		Strict:   proc.Strict,
		Mode:     proc.Mode,
		MaxDepth: proc.MaxDepth,
		Table:    table,
	}

	for n, line := range residual {
		out, err = exp.expandLine(out, line, col.Origin[n])
		if err != nil {
			return
		}
	}

	return
}

// ProcessLines processes a sequence of lines, stopping at the first
// read error.
func (proc *Processor) ProcessLines(seq iter.Seq2[string, error]) (out []string, err error) {
	var lines []string
	for line, lerr := range seq {
		if lerr != nil {
			err = lerr
			return
		}
		lines = append(lines, line)
	}

	return proc.Process(lines)
}

// ProcessReader processes the lines of an input stream.
func (proc *Processor) ProcessReader(input io.Reader) (out []string, err error) {
	return proc.ProcessLines(internal.ScanLines(input))
}
