package syntax

import (
	"fmt"

	"fortio.org/safecast"
)

// cursor is a byte position inside the scanned text.
type cursor struct {
	src   string
	off   uint32
	limit uint32
}

func newCursor(src string) cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("expression length overflow: %w", err))
	}
	return cursor{src: src, limit: limit}
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek returns the current byte, or 0 at the end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekAt returns the byte n positions ahead, or 0 past the end of input.
func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.src[c.off+n]
}

func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

// advance moves the cursor n bytes forward, clamped to the end of input.
func (c *cursor) advance(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor advance overflow: %w", err))
	}
	c.off = min(c.off+un, c.limit)
}

type mark uint32

func (c *cursor) mark() mark {
	return mark(c.off)
}

func (c *cursor) reset(m mark) {
	c.off = uint32(m)
}

func (c *cursor) spanFrom(m mark) Span {
	return Span{Start: uint32(m), End: c.off}
}

// sub returns a cursor over [from, to) of the same text.
func (c *cursor) sub(from, to mark) cursor {
	return cursor{src: c.src, off: uint32(from), limit: uint32(to)}
}

func (c *cursor) rest() string {
	return c.src[c.off:c.limit]
}
