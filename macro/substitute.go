package macro

import (
	"cmp"
	"slices"
	"strings"
)

// Mode selects how formal parameters are replaced in a macro body.
type Mode int

const (
	// ModeToken replaces whole words only, in a single scan of the line.
	ModeToken Mode = iota
	// ModeLiteral replaces every occurrence of a formal parameter's text,
	// formal by formal, as the classic tool does. A formal that is a
	// substring of another word is replaced inside that word too, and a
	// later formal can replace text inserted for an earlier one.
	ModeLiteral
)

var modeNames = []string{
	ModeToken:   "token",
	ModeLiteral: "literal",
}

func (mode Mode) String() string {
	if int(mode) < 0 || int(mode) >= len(modeNames) {
		return f("Mode(%d)", int(mode))
	}
	return modeNames[mode]
}

// Set parses a mode name, so that a Mode can be used as a flag.Value.
func (mode *Mode) Set(name string) (err error) {
	n := slices.Index(modeNames, strings.ToLower(name))
	if n < 0 {
		err = ErrModeInvalid(name)
		return
	}
	*mode = Mode(n)
	return
}

// Substitute replaces the formal params in line by the actual args, pairing
// them by position. Pairs beyond the shorter of the two lists are ignored.
func (mode Mode) Substitute(line string, params []string, args []string) string {
	n := min(len(params), len(args))
	params = params[:n]
	args = args[:n]

	if mode != ModeLiteral {
		return substituteTokens(line, params, args)
	}

	for n, param := range params {
		// An empty formal would match between every character.
		if len(param) == 0 {
			continue
		}
		line = strings.ReplaceAll(line, param, args[n])
	}

	return line
}

// isWordByte is true for bytes that can be part of an identifier.
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c >= 0x80
}

// matchToken checks if param occurs as a whole word of line at index.
func matchToken(line string, index int, param string) bool {
	if !strings.HasPrefix(line[index:], param) {
		return false
	}

	if isWordByte(param[0]) && index > 0 && isWordByte(line[index-1]) {
		return false
	}

	end := index + len(param)
	if isWordByte(param[len(param)-1]) && end < len(line) && isWordByte(line[end]) {
		return false
	}

	return true
}

// substituteTokens replaces whole word params by args. Replaced text is not
// scanned again.
func substituteTokens(line string, params []string, args []string) string {
	// Longest formal first, then declaration order.
	var order []int
	for n, param := range params {
		if len(param) > 0 {
			order = append(order, n)
		}
	}
	if len(order) == 0 {
		return line
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(len(params[b]), len(params[a]))
	})

	var sb strings.Builder
	for index := 0; index < len(line); {
		matched := false
		for _, n := range order {
			if matchToken(line, index, params[n]) {
				sb.WriteString(args[n])
				index += len(params[n])
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(line[index])
			index++
		}
	}

	return sb.String()
}
