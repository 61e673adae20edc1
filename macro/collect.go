// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"slices"
	"strings"
)

// collectState is the state of the definition block scanner.
type collectState int

const (
	stateOutside collectState = iota // Outside of any MACRO block.
	stateHeader                      // After MACRO, waiting for the header.
	stateBody                        // After the header, collecting the body.
)

// Collector is the first pass. It moves MACRO ... MEND blocks into a Table,
// and leaves all other lines, unmodified, in the residual stream.
type Collector struct {
	Strict bool   // If set, report malformed definitions as errors.
	Table  *Table // Table of collected macros. Allocated if nil.
	Origin []int  // Source line number of each residual line.

	state   collectState
	current *Macro
	blockNo int
}

// Collect scans the source lines, filling the Table, and returns the
// residual stream.
//
// Without Strict, an unterminated block at the end of the lines is dropped;
// use Unterminated to detect that case.
func (col *Collector) Collect(lines []string) (residual []string, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if col.Table == nil {
		col.Table = NewTable()
	}
	col.Origin = col.Origin[:0]
	col.state = stateOutside
	col.current = nil
	col.blockNo = 0

	for n, text := range lines {
		lineno = n + 1
		line = text

		var keep bool
		keep, err = col.scan(text, lineno)
		if err != nil {
			return
		}

		if keep {
			residual = append(residual, text)
			col.Origin = append(col.Origin, lineno)
		}
	}

	if col.Strict && col.state != stateOutside {
		lineno = col.blockNo
		line = lines[lineno-1]
		err = ErrMacroLonely
		return
	}

	return
}

// Unterminated reports a MACRO block still open at the end of the last
// Collect. The macro is nil if the block had no header.
func (col *Collector) Unterminated() (m *Macro, lineno int, ok bool) {
	if col.state == stateOutside {
		return
	}

	return col.current, col.blockNo, true
}

// scan advances the state machine by one line. keep is set if the line
// belongs to the residual stream.
func (col *Collector) scan(text string, lineno int) (keep bool, err error) {
	if isKeyword(text, KeywordMacro) {
		if col.Strict && col.state != stateOutside {
			err = ErrMacroNesting
			return
		}
		col.state = stateHeader
		col.current = nil
		col.blockNo = lineno
		return
	}

	switch col.state {
	case stateOutside:
		if col.Strict && isKeyword(text, KeywordMend) {
			err = ErrMacroLonelyEndm
			return
		}
		keep = true
	case stateHeader, stateBody:
		if isKeyword(text, KeywordMend) {
			err = col.commit()
			col.state = stateOutside
			col.current = nil
			return
		}

		if col.state == stateBody {
			col.current.Lines = append(col.current.Lines, strings.TrimSpace(text))
			return
		}

		words := strings.Fields(text)
		if len(words) == 0 {
			// Blank lines before the header are skipped.
			return
		}

		col.current = &Macro{
			Name:   words[0],
			LineNo: lineno,
			Params: splitParams(words[1:]),
		}
		if col.Strict && slices.Contains(col.current.Params, "") {
			err = ErrMacroSyntax
			return
		}
		col.state = stateBody
	}

	return
}

// commit moves the current macro, if any, into the table.
func (col *Collector) commit() (err error) {
	if col.current == nil {
		return
	}

	if col.Strict {
		_, ok := col.Table.Lookup(col.current.Name)
		if ok {
			err = ErrMacroDuplicate
			return
		}
	}

	_, err = col.Table.Define(col.current)
	return
}
