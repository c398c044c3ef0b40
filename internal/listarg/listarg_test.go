package listarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		token    string
		expected []string
	}{
		{name: "single quoted", token: "['a','b','c']", expected: []string{"a", "b", "c"}},
		{name: "double quoted", token: `["x", "y"]`, expected: []string{"x", "y"}},
		{name: "prefix already present", token: "args=['p']", expected: []string{"p"}},
		{name: "empty list", token: "[]", expected: []string{}},
		{name: "keeps order and duplicates", token: "['b','a','b']", expected: []string{"b", "a", "b"}},
		{name: "spaces inside strings", token: "['hello world', ' x ']", expected: []string{"hello world", " x "}},
		{name: "trailing comma", token: "['a',]", expected: []string{"a"}},
		{name: "decomposed accent is composed", token: "['e\u0301']", expected: []string{"\u00e9"}},
		{name: "angstrom sign becomes letter", token: "['\u212b', 'A\u030a']", expected: []string{"\u00c5", "\u00c5"}},
		{name: "precomposed text is untouched", token: "['\u00e9t\u00e9']", expected: []string{"\u00e9t\u00e9"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.token)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		token string
	}{
		{name: "unterminated bracket", token: "[a,b"},
		{name: "bare words", token: "[a,b]"},
		{name: "empty token", token: ""},
		{name: "not a list", token: "'a'"},
		{name: "numbers instead of strings", token: "[1,2]"},
		{name: "extra key", token: "['a']\nother = 1"},
		{name: "prefix with spaces is not recognized", token: "args = ['a']"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.token)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), FormatHint)
		})
	}
}
