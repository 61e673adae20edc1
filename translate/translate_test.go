package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("macro ADD line 3", From("macro %v line %v", "ADD", 3))
	assert.Equal("1,024 lines", From("%d lines", 1024))

	assert.Error(SetLanguage("not a language tag!"))
	assert.Equal("still en", From("still %v", "en"))
}
