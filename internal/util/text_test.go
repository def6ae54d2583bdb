package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAnyCaseInsensitive(t *testing.T) {
	assert.True(t, ContainsAnyCaseInsensitive("Hello World", []string{"hello"}))
	assert.True(t, ContainsAnyCaseInsensitive("rivest talk", []string{"nope", "TALK"}))
	assert.False(t, ContainsAnyCaseInsensitive("rivest talk", nil))
	assert.False(t, ContainsAnyCaseInsensitive("rivest talk", []string{"walk"}))
}

func TestTokenizeKeepsPunctuation(t *testing.T) {
	assert.Equal(t, []string{"hi", "@bob!", "ok"}, Tokenize("  hi\t@bob!\n\nok "))
	assert.Empty(t, Tokenize("   "))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, SplitAndTrim(" a, b c ,,d,"))
	assert.Nil(t, SplitAndTrim(""))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \n b\t\tc "))
}
