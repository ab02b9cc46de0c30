// Package diagnostics renders source-anchored error messages. A reporter is
// constructed once per source buffer and reused by every compilation stage
// that needs to point at a region of the source.
package diagnostics

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lynx-lang/lynx/pkg/compiler/source"
)

// Reporter renders diagnostics for one source buffer. It holds only an
// immutable copy of the source plus the output sink, so a single reporter
// serves any number of Report calls in any order.
type Reporter struct {
	src string
	out io.Writer
}

// NewReporter creates a reporter over src that writes rendered diagnostics
// to out.
func NewReporter(src string, out io.Writer) *Reporter {
	return &Reporter{src: src, out: out}
}

// Report renders msg anchored at span: the message, a gutter line, the quoted
// source line, and a caret marker under the offending region. The caret run
// is capped at the characters remaining on the quoted line; a span that
// logically continues past the line break gets a continuation notice instead
// of carets spilling onto the next line's text.
func (r *Reporter) Report(msg string, span source.Span) {
	pos := source.Resolve(r.src, span.Offset)

	width := len(strconv.Itoa(pos.Line)) + 3
	gutter := strings.Repeat(" ", width)

	remaining := len(pos.LineText) - pos.Column
	carets := span.Length
	truncated := carets > remaining
	if truncated {
		carets = remaining
	}

	fmt.Fprintf(r.out, "%s\n", msg)
	fmt.Fprintf(r.out, "%s|\n", gutter)
	fmt.Fprintf(r.out, "%*d | %s\n", width-1, pos.Line, pos.LineText)
	fmt.Fprintf(r.out, "%s| %s%s\n", gutter, strings.Repeat(" ", pos.Column), strings.Repeat("^", carets))
	if truncated {
		fmt.Fprintf(r.out, "%s| --> Error continues in next line.\n", gutter)
	}
	fmt.Fprintln(r.out)
}
