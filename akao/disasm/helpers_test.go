package disasm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-akao/akao/memory"
)

func putLE(data []byte, offset int, value uint16) {
	binary.LittleEndian.PutUint16(data[offset:], value)
}

// flatWindow builds a v1-v3 window where every channel starts at addr.
func flatWindow(t *testing.T, addr int, stream ...byte) *memory.Window {
	t.Helper()
	data := make([]byte, memory.WindowSize)
	for i := 0; i < ChannelCount; i++ {
		putLE(data, i*2, uint16(addr))
	}
	copy(data[addr:], stream)

	w, err := memory.NewWindow(data, 0)
	require.NoError(t, err)
	return w
}

// relocatedWindow builds a v4 window where every channel points at raw, relocated against base.
func relocatedWindow(t *testing.T, base, raw uint16, stream ...byte) *memory.Window {
	t.Helper()
	data := make([]byte, memory.WindowSize)
	putLE(data, 0, base)
	putLE(data, 2, base+0x0800)
	for i := 0; i < ChannelCount; i++ {
		putLE(data, 4+i*2, raw)
		putLE(data, 20+i*2, raw+0x0400)
	}
	copy(data[Relocate(raw, base):], stream)

	w, err := memory.NewWindow(data, 0)
	require.NoError(t, err)
	return w
}

// streamWindow places a stream at offset without any track table.
func streamWindow(t *testing.T, offset int, stream ...byte) *memory.Window {
	t.Helper()
	data := make([]byte, memory.WindowSize)
	copy(data[offset:], stream)

	w, err := memory.NewWindow(data, 0)
	require.NoError(t, err)
	return w
}
