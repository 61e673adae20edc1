// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Reserved keywords delimiting a definition block. They match case-insensitively.
const (
	KeywordMacro = "MACRO"
	KeywordMend  = "MEND"
)

// Macro represents a macro definition.
type Macro struct {
	Name   string   // Name of the macro, the first word of the header.
	LineNo int      // Line number of the macro header.
	Params []string // Formal parameters, in declaration order.
	Lines  []string // Lines of trimmed macro text to expand.
}

// Header returns the macro header, as it would be written in source text.
func (m *Macro) Header() string {
	if len(m.Params) == 0 {
		return m.Name
	}
	return m.Name + " " + strings.Join(m.Params, ", ")
}

// Table maps macro names to definitions.
//
// A Table is filled by the Collector (or a macro library) and frozen before
// expansion starts. The zero value is an empty, writable table.
type Table struct {
	macro  map[string](*Macro)
	frozen bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{macro: make(map[string](*Macro))}
}

// Define adds a macro, replacing any earlier macro of the same name.
func (tab *Table) Define(m *Macro) (replaced bool, err error) {
	if tab.frozen {
		err = ErrTableFrozen
		return
	}

	if tab.macro == nil {
		tab.macro = make(map[string](*Macro))
	}

	_, replaced = tab.macro[m.Name]
	tab.macro[m.Name] = m
	return
}

// Lookup finds a macro by name. Names are case sensitive.
func (tab *Table) Lookup(name string) (m *Macro, ok bool) {
	m, ok = tab.macro[name]
	return
}

// Len is the number of defined macros.
func (tab *Table) Len() int {
	return len(tab.macro)
}

// Freeze makes the table read-only.
func (tab *Table) Freeze() {
	tab.frozen = true
}

// Frozen reports if the table is read-only.
func (tab *Table) Frozen() bool {
	return tab.frozen
}

// Clone returns a writable copy of the table. Macros are shared.
func (tab *Table) Clone() *Table {
	clone := NewTable()
	maps.Copy(clone.macro, tab.macro)
	return clone
}

// All returns an iterator over the macros, sorted by name.
func (tab *Table) All() iter.Seq2[string, *Macro] {
	return func(yield func(name string, m *Macro) bool) {
		for _, name := range slices.Sorted(maps.Keys(tab.macro)) {
			if !yield(name, tab.macro[name]) {
				return
			}
		}
	}
}

// isKeyword checks a line against a reserved keyword.
func isKeyword(line string, keyword string) bool {
	return strings.ToUpper(strings.TrimSpace(line)) == keyword
}

// splitParams joins words with single spaces, and splits the result on
// commas into trimmed parameters.
func splitParams(words []string) (params []string) {
	if len(words) == 0 {
		return
	}

	for _, param := range strings.Split(strings.Join(words, " "), ",") {
		params = append(params, strings.TrimSpace(param))
	}

	return
}
