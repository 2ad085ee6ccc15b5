package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"correctness": 80}`,
			want:  `{"correctness": 80}`,
		},
		{
			name:  "markdown fenced",
			input: "```json\n{\"correctness\": 80}\n```",
			want:  `{"correctness": 80}`,
		},
		{
			name:  "surrounding prose",
			input: `Here is my evaluation: {"feedback": "ok"} — hope that helps.`,
			want:  `{"feedback": "ok"}`,
		},
		{
			name:  "nested objects",
			input: `{"a": {"b": {"c": 1}}}`,
			want:  `{"a": {"b": {"c": 1}}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"feedback": "use map[int]int{} here"}`,
			want:  `{"feedback": "use map[int]int{} here"}`,
		},
		{
			name:  "escaped quote inside string",
			input: `{"feedback": "she said \"use a heap\" {twice}"}`,
			want:  `{"feedback": "she said \"use a heap\" {twice}"}`,
		},
		{
			name:  "no object",
			input: "plain text reply",
			want:  "",
		},
		{
			name:  "unbalanced",
			input: `{"feedback": "truncated`,
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.input))
		})
	}
}

func TestCodeLike(t *testing.T) {
	code := []string{
		"#include <vector>\nint main() { return 0; }",
		"def two_sum(nums, target):\n    seen = {}",
		"func reverse(s []int) {}",
		"class Solution { public int[] twoSum(...) {} }",
		"callback = function(x) { return x; }",
	}
	for _, s := range code {
		assert.True(t, codeLike.MatchString(s), "expected to detect code: %q", s)
	}

	prose := []string{
		"how do I approach two sum?",
		"what is the time complexity of merge sort",
		"explain sliding window",
	}
	for _, s := range prose {
		assert.False(t, codeLike.MatchString(s), "expected plain question: %q", s)
	}
}
