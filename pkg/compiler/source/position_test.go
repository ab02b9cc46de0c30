package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lynx-lang/lynx/pkg/compiler/source"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		offset int
		want   source.Position
	}{
		{
			name:   "start of buffer",
			src:    "abc",
			offset: 0,
			want:   source.Position{Line: 1, Column: 0, LineText: "abc", LineStart: 0},
		},
		{
			name:   "middle of first line",
			src:    "abc\ndef",
			offset: 2,
			want:   source.Position{Line: 1, Column: 2, LineText: "abc", LineStart: 0},
		},
		{
			name:   "offset on the newline belongs to the line it ends",
			src:    "a\nb",
			offset: 1,
			want:   source.Position{Line: 1, Column: 1, LineText: "a", LineStart: 0},
		},
		{
			name:   "start of second line",
			src:    "a\nb\nc",
			offset: 2,
			want:   source.Position{Line: 2, Column: 0, LineText: "b", LineStart: 2},
		},
		{
			name:   "end of buffer on last line",
			src:    "a\nbc",
			offset: 4,
			want:   source.Position{Line: 2, Column: 2, LineText: "bc", LineStart: 2},
		},
		{
			name:   "end of buffer after trailing newline",
			src:    "a\n",
			offset: 2,
			want:   source.Position{Line: 2, Column: 0, LineText: "", LineStart: 2},
		},
		{
			name:   "offset past the end is clamped",
			src:    "ab",
			offset: 10,
			want:   source.Position{Line: 1, Column: 2, LineText: "ab", LineStart: 0},
		},
		{
			name:   "empty buffer",
			src:    "",
			offset: 0,
			want:   source.Position{Line: 1, Column: 0, LineText: "", LineStart: 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, source.Resolve(tc.src, tc.offset))
		})
	}
}

func TestSpanEnd(t *testing.T) {
	assert.Equal(t, 7, source.Span{Offset: 3, Length: 4}.End())
	assert.Equal(t, 3, source.Span{Offset: 3}.End())
}
