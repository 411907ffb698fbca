package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json fence no newline", "```json{\"a\": 1}```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"language tag dropped", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"prose around object", `Here is the result: {"a": 1} as requested.`, `{"a": 1}`},
		{"prose around array", `The entries are [1, 2, 3].`, `[1, 2, 3]`},
		{"no json at all", "nothing to see here", "nothing to see here"},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanJSONBlock(tc.input))
		})
	}
}
