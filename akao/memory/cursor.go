package memory

import (
	"fmt"

	"github.com/valerio/go-akao/akao/bit"
)

// Cursor is a seekable, bounds-checked reader over a Window.
// Each decode owns its own cursor, the window underneath is never written.
type Cursor struct {
	window *Window
	pos    int
}

// Offset returns the current position inside the window.
func (c *Cursor) Offset() int {
	return c.pos
}

// Seek moves the cursor to an absolute window offset. Seeking to the end of the
// window is allowed, any read from there fails.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > c.window.Len() {
		return fmt.Errorf("%w: offset 0x%X outside window of %d bytes", ErrTruncated, offset, c.window.Len())
	}
	c.pos = offset
	return nil
}

// Remaining returns the number of bytes left before the end of the window.
func (c *Cursor) Remaining() int {
	return c.window.Len() - c.pos
}

func (c *Cursor) need(n int) error {
	if c.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset 0x%03X, %d left", ErrTruncated, n, c.pos, c.Remaining())
	}
	return nil
}

func (c *Cursor) take(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b, err := c.window.Slice(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v, _ := c.window.Read(c.pos)
	c.pos++
	return v, nil
}

// ReadI8 reads one two's complement byte.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return bit.Signed(v), err
}

// ReadU16LE reads a little-endian 16 bit value.
func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return bit.CombineLE(b[0], b[1]), nil
}

// ReadU16BE reads a big-endian 16 bit value.
func (c *Cursor) ReadU16BE() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return bit.Combine(b[0], b[1]), nil
}
