package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name    string
		old     []string
		new     []string
		want    string
		changed bool
	}{
		{
			name:    "append",
			old:     []string{"foo"},
			new:     []string{"foo", "bar"},
			want:    "  foo\n+ bar\n",
			changed: true,
		},
		{
			name:    "remove middle",
			old:     []string{"a", "b", "c"},
			new:     []string{"a", "c"},
			want:    "  a\n- b\n  c\n",
			changed: true,
		},
		{
			name:    "from empty",
			old:     nil,
			new:     []string{"work"},
			want:    "+ work\n",
			changed: true,
		},
		{
			name:    "to empty",
			old:     []string{"work"},
			new:     nil,
			want:    "- work\n",
			changed: true,
		},
		{
			name: "unchanged",
			old:  []string{"a", "b"},
			new:  []string{"a", "b"},
			want: "  a\n  b\n",
		},
		{
			name: "both empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Lines(tt.old, tt.new, "old", "new")
			assert.Equal(t, tt.want, r.Diff)
			assert.Equal(t, tt.changed, r.Changed())
		})
	}
}

func TestCollapsesLongEqualRuns(t *testing.T) {
	old := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	r := Lines(old, append(old, "9"), "a", "b")
	assert.Contains(t, r.Diff, "  ...\n")
	assert.NotContains(t, r.Diff, "  4\n")
	assert.True(t, strings.HasSuffix(r.Diff, "+ 9\n"))
}

func TestFormat(t *testing.T) {
	r := Lines([]string{"a"}, []string{"b"}, "f (stored)", "f (proposed)")

	plain := r.Format(false)
	assert.Equal(t, "--- f (stored)\n+++ f (proposed)\n- a\n+ b\n", plain)

	coloured := r.Format(true)
	assert.Contains(t, coloured, "\033[31m- a\033[0m")
	assert.Contains(t, coloured, "\033[32m+ b\033[0m")
}
