package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected string
	}{
		{name: "plain word", term: "rice", expected: "%rice%"},
		{name: "lower cases input", term: "Rice Bags", expected: "%rice bags%"},
		{name: "empty matches everything", term: "", expected: "%%"},
		{name: "escapes percent", term: "50%", expected: "%50!%%"},
		{name: "escapes underscore", term: "a_b", expected: "%a!_b%"},
		{name: "escapes escape char", term: "hi!", expected: "%hi!!%"},
		{name: "backslash is literal", term: `c:\x`, expected: `%c:\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsPattern(tt.term))
		})
	}
}

func TestBuildContainsQuery(t *testing.T) {
	query := BuildContainsQuery("SELECT ID FROM DONATION", "TITLE", "DESCRIPTION")
	assert.Equal(t, "SELECT ID FROM DONATION WHERE LOWER(TITLE) LIKE ? ESCAPE '!' OR LOWER(DESCRIPTION) LIKE ? ESCAPE '!'", query)

	query = BuildContainsQuery("SELECT ID FROM FEEDBACK", "MESSAGE")
	assert.Equal(t, "SELECT ID FROM FEEDBACK WHERE LOWER(MESSAGE) LIKE ? ESCAPE '!'", query)
}

func TestContainsArgs(t *testing.T) {
	args := ContainsArgs("Rice", 2)
	assert.Equal(t, []interface{}{"%rice%", "%rice%"}, args)
	assert.Empty(t, ContainsArgs("rice", 0))
}

func TestBuildOrderByQuery(t *testing.T) {
	assert.Equal(t, "SELECT * FROM T ORDER BY ID ASC", BuildOrderByQuery("SELECT * FROM T", "ID", true))
	assert.Equal(t, "SELECT * FROM T ORDER BY ID DESC", BuildOrderByQuery("SELECT * FROM T", "ID", false))
}
