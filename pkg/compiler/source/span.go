package source

// Span identifies a region of the source buffer as a byte offset plus length.
// It is never interpreted as line/column coordinates until rendering time.
type Span struct {
	Offset int
	Length int
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}
