package macro

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line    string
		params  []string
		args    []string
		token   string
		literal string
	}){
		{"MOV R1, A", []string{"A"}, []string{"R2"}, "MOV R1, R2", "MOV R1, R2"},
		{"ADD A", []string{"A"}, []string{"X"}, "ADD X", "XDD X"},
		{"A_1+A", []string{"A"}, []string{"B"}, "A_1+B", "B_1+B"},
		{"MOV [A],A", []string{"A"}, []string{"SP"}, "MOV [SP],SP", "MOV [SP],SP"},
		{"AB A", []string{"A", "AB"}, []string{"x", "y"}, "y x", "xB x"},
		{"A B", []string{"A", "B"}, []string{"B", "C"}, "B C", "C C"},
		{"&X, &XY", []string{"&X"}, []string{"1"}, "1, &XY", "1, 1Y"},
		{"ABC", []string{""}, []string{"z"}, "ABC", "ABC"},
		{"A B", []string{"A", "B"}, []string{"x"}, "x B", "x B"},
		{"A B", []string{"A"}, []string{"x", "y"}, "x B", "x B"},
		{"A B", nil, nil, "A B", "A B"},
		{"MOV ÄA, A", []string{"A"}, []string{"x"}, "MOV ÄA, x", "MOV Äx, x"},
		{"", []string{"A"}, []string{"x"}, "", ""},
	}

	for _, entry := range table {
		assert.Equal(entry.token, ModeToken.Substitute(entry.line, entry.params, entry.args), entry.line)
		assert.Equal(entry.literal, ModeLiteral.Substitute(entry.line, entry.params, entry.args), entry.line)
	}
}

func TestMode(t *testing.T) {
	assert := assert.New(t)

	var mode Mode
	assert.Equal(ModeToken, mode)
	assert.Equal("token", mode.String())

	assert.NoError(mode.Set("Literal"))
	assert.Equal(ModeLiteral, mode)
	assert.Equal("literal", mode.String())

	err := mode.Set("regex")
	assert.ErrorIs(err, ErrModeInvalid("regex"))
	assert.Equal(ModeLiteral, mode)

	assert.Equal("Mode(7)", Mode(7).String())

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	mode = ModeToken
	fs.Var(&mode, "mode", "substitution mode")
	assert.NoError(fs.Parse([]string{"-mode", "literal"}))
	assert.Equal(ModeLiteral, mode)
}
