package source

import "strings"

// Position is the line-oriented view of a byte offset, computed on demand at
// rendering time.
type Position struct {
	Line      int    // 1-based line number
	Column    int    // 0-based byte column within the line
	LineText  string // full text of the containing line, without the newline
	LineStart int    // byte offset where the line begins
}

// Resolve maps a byte offset into src to a Position. The line number is one
// plus the count of newlines strictly before the offset; the containing line
// runs from the character after the preceding newline (or the buffer start)
// to the next newline (or the buffer end). Offsets past the end of the buffer
// are clamped to it.
func Resolve(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}

	line := 1 + strings.Count(src[:offset], "\n")
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1

	lineEnd := strings.IndexByte(src[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += lineStart
	}

	return Position{
		Line:      line,
		Column:    offset - lineStart,
		LineText:  src[lineStart:lineEnd],
		LineStart: lineStart,
	}
}
