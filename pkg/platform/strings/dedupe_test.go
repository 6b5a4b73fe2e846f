package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "yaml list",
			input:    []string{"https://a.example", "https://b.example"},
			expected: []string{"https://a.example", "https://b.example"},
		},
		{
			name:     "comma separated env value",
			input:    []string{" https://a.example ,https://b.example,, "},
			expected: []string{"https://a.example", "https://b.example"},
		},
		{
			name:     "duplicates across entries",
			input:    []string{"*", "https://a.example,*"},
			expected: []string{"*", "https://a.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input, ","))
		})
	}
}

func TestDedupeAndTrim(t *testing.T) {
	assert.Nil(t, DedupeAndTrim(nil))
	assert.Equal(t, []string{}, DedupeAndTrim([]string{}))
	assert.Equal(t, []string{"foo", "bar"}, DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  ", "bar"}))
}
