package lexer

// Cursor is a bounds-checked, random-access walker over an immutable source
// buffer. Positions are byte offsets; the scanner operates on ASCII source,
// so one byte is one character.
type Cursor struct {
	src      string
	pos      int
	reverted bool
}

// NewCursor creates a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Peek returns the byte n positions ahead of the cursor without consuming
// anything. Peek(0) is the byte the next call to Next would consume.
func (c *Cursor) Peek(n int) (byte, bool) {
	if c.pos+n >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos+n], true
}

// Current returns the byte at the cursor position without consuming it.
func (c *Cursor) Current() (byte, bool) {
	return c.Peek(0)
}

// Next consumes and returns the byte at the cursor position. The position
// advances even when the buffer is exhausted, so that a sub-scan which runs
// off the end can undo the overrun with Revert.
func (c *Cursor) Next() (byte, bool) {
	ch, ok := c.Current()
	c.pos++
	c.reverted = false
	return ch, ok
}

// Revert moves the cursor back by exactly one previously consumed position.
// It is a single-step undo: calling it twice without an intervening Next, or
// before anything was consumed, is a scanner bug.
func (c *Cursor) Revert() {
	if c.pos == 0 {
		panic("lexer: Revert before first read")
	}
	if c.reverted {
		panic("lexer: Revert called twice without an intervening read")
	}
	c.pos--
	c.reverted = true
}

// Match consumes the byte at the cursor position if it equals expected.
// Otherwise, the cursor is left untouched.
func (c *Cursor) Match(expected byte) bool {
	ch, ok := c.Current()
	if !ok || ch != expected {
		return false
	}
	c.pos++
	c.reverted = false
	return true
}

// Exhausted reports whether the cursor position has reached the end of the
// buffer.
func (c *Cursor) Exhausted() bool {
	return c.pos >= len(c.src)
}

// Pos returns the current byte position.
func (c *Cursor) Pos() int {
	return c.pos
}
