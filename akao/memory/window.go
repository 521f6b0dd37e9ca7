package memory

import (
	"errors"
	"fmt"
)

// WindowSize is the number of bytes captured from the sequence control region.
const WindowSize = 4096

// ErrTruncated is returned whenever a read would go past the end of the captured window.
var ErrTruncated = errors.New("truncated memory window")

// Window is an immutable capture of the driver's control block, starting at a base offset
// inside the full audio RAM. Offsets handed to a Window are relative to that base.
type Window struct {
	base int
	data []byte
}

// NewWindow captures WindowSize bytes of ram starting at base.
func NewWindow(ram []byte, base int) (*Window, error) {
	if base < 0 {
		return nil, fmt.Errorf("invalid window base %d", base)
	}
	if len(ram) < base+WindowSize {
		return nil, fmt.Errorf("%w: need %d bytes from 0x%04X, have %d", ErrTruncated, WindowSize, base, len(ram)-base)
	}

	data := make([]byte, WindowSize)
	copy(data, ram[base:base+WindowSize])

	return &Window{base: base, data: data}, nil
}

// Base returns the RAM address the window was captured from.
func (w *Window) Base() int {
	return w.base
}

// Len returns the number of bytes in the window.
func (w *Window) Len() int {
	return len(w.data)
}

// Read reads a single byte at the specified window offset. Returns false when out of bounds.
func (w *Window) Read(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(w.data) {
		return 0, false
	}
	return w.data[offset], true
}

// Slice returns a copy of length bytes starting at offset.
func (w *Window) Slice(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(w.data) {
		return nil, fmt.Errorf("%w: %d bytes at offset 0x%03X", ErrTruncated, length, offset)
	}
	out := make([]byte, length)
	copy(out, w.data[offset:offset+length])
	return out, nil
}

// Cursor returns a new independent cursor positioned at offset.
func (w *Window) Cursor(offset int) (*Cursor, error) {
	c := &Cursor{window: w}
	if err := c.Seek(offset); err != nil {
		return nil, err
	}
	return c, nil
}
