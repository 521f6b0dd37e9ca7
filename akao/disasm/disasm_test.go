package disasm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-akao/akao/event"
	"github.com/valerio/go-akao/akao/memory"
	"github.com/valerio/go-akao/akao/profile"
)

func TestRelocate(t *testing.T) {
	assert.Equal(t, 36, RelocatedHeaderLength)
	assert.Equal(t, 48, Relocate(0x0030, 0x0024))
	assert.Equal(t, 36, Relocate(0x1C00, 0x1C00))
	assert.Equal(t, 4, Relocate(0x1BE0, 0x1C00))
	assert.Equal(t, -4, Relocate(0x1BD8, 0x1C00))
}

func TestResolveTrackTableFlat(t *testing.T) {
	data := make([]byte, memory.WindowSize)
	for i := 0; i < ChannelCount; i++ {
		putLE(data, i*2, uint16(0x0100+i*0x10))
	}
	w, err := memory.NewWindow(data, 0)
	require.NoError(t, err)

	table, err := ResolveTrackTable(w, profile.V2)
	require.NoError(t, err)

	assert.False(t, table.Relocated)
	for i := 0; i < ChannelCount; i++ {
		assert.Equal(t, uint16(0x0100+i*0x10), table.Raw[i])
		assert.Equal(t, 0x0100+i*0x10, table.Addresses[i])
	}
}

func TestResolveTrackTableRelocated(t *testing.T) {
	w := relocatedWindow(t, 0x0024, 0x0030, 0xFD)

	table, err := ResolveTrackTable(w, profile.FinalFantasy6)
	require.NoError(t, err)

	assert.True(t, table.Relocated)
	assert.Equal(t, uint16(0x0024), table.Base)
	assert.Equal(t, uint16(0x0824), table.End)
	for i := 0; i < ChannelCount; i++ {
		assert.Equal(t, uint16(0x0030), table.Raw[i])
		assert.Equal(t, uint16(0x0430), table.Duplicates[i])
		assert.Equal(t, 48, table.Addresses[i])
	}
}

func TestDisassembleEndToEnd(t *testing.T) {
	w := flatWindow(t, 0x0100, 0xF8)

	result, err := Disassemble(w, profile.V2)
	require.NoError(t, err)
	require.NoError(t, result.Err())

	tracks := result.Tracks()
	require.Len(t, tracks, ChannelCount)
	for i, track := range tracks {
		require.Len(t, track, 1, "channel %d", i)
		assert.Equal(t, event.KindEnd, track[0].Kind)
		assert.Equal(t, i, result.Channels[i].Index)
		assert.Equal(t, 0x0100, result.Channels[i].Address)
	}

	out, err := json.Marshal(tracks[0])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"event":"EVENT_END"}]`, string(out))
}

func TestDisassembleRelocated(t *testing.T) {
	w := relocatedWindow(t, 0x1C00, 0x1C40,
		0xDC, 0x05,       // program change
		0x00,             // note
		0xF6, 0x1C, 0x42, // goto
	)

	result, err := Disassemble(w, profile.FinalFantasy6)
	require.NoError(t, err)
	require.NoError(t, result.Err())

	for _, ch := range result.Channels {
		assert.Equal(t, 0x64, ch.Address)
		require.Len(t, ch.Track, 3)
		assert.Equal(t, event.KindProgChange, ch.Track[0].Kind)
		assert.Equal(t, "C", ch.Track[1].Note)

		addr, ok := ch.Track[2].Operand(event.FieldAddr)
		assert.True(t, ok)
		assert.Equal(t, 0x1C42, addr)
	}
}

func TestDisassembleRelocatedBeforeWindow(t *testing.T) {
	const base = 0x1C00
	data := make([]byte, memory.WindowSize)
	putLE(data, 0, base)
	putLE(data, 2, base+0x0800)
	for i := 0; i < ChannelCount; i++ {
		putLE(data, 4+i*2, 0x1C40)
	}
	putLE(data, 4+5*2, 0x1BD8)
	data[Relocate(0x1C40, base)] = 0xEB

	w, err := memory.NewWindow(data, 0)
	require.NoError(t, err)

	result, err := Disassemble(w, profile.FinalFantasy6)
	require.NoError(t, err)

	err = result.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrTruncated)

	var chErr *ChannelError
	require.True(t, errors.As(err, &chErr))
	assert.Equal(t, 5, chErr.Channel)
	assert.Equal(t, -4, chErr.Address)
	assert.Equal(t, -4, result.Table.Addresses[5])

	for i, ch := range result.Channels {
		if i == 5 {
			assert.Nil(t, ch.Track)
			continue
		}
		require.NoError(t, ch.Err)
		require.Len(t, ch.Track, 1)
		assert.Equal(t, event.KindEnd, ch.Track[0].Kind)
	}
}

func TestDisassembleChannelsAreIndependent(t *testing.T) {
	data := make([]byte, memory.WindowSize)
	for i := 0; i < ChannelCount; i++ {
		putLE(data, i*2, 0x0200)
	}
	putLE(data, 3*2, memory.WindowSize-2)
	data[0x0200] = 0xF8
	data[memory.WindowSize-2] = 0xF1 // goto missing one address byte

	w, err := memory.NewWindow(data, 0)
	require.NoError(t, err)

	result, err := Disassemble(w, profile.V2)
	require.NoError(t, err)

	err = result.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrTruncated)

	var chErr *ChannelError
	require.True(t, errors.As(err, &chErr))
	assert.Equal(t, 3, chErr.Channel)
	assert.Equal(t, memory.WindowSize-2, chErr.Address)

	tracks := result.Tracks()
	assert.Nil(t, tracks[3])
	for i, track := range tracks {
		if i == 3 {
			continue
		}
		assert.Len(t, track, 1)
		assert.NoError(t, result.Channels[i].Err)
	}
}

func TestDisassembleIsDeterministic(t *testing.T) {
	w := flatWindow(t, 0x0180, 0xD2, 0x80, 0x10, 0xEE, 0x04, 0x21, 0xEF, 0xF1, 0x01, 0x80)

	first, err := Disassemble(w, profile.V2)
	require.NoError(t, err)
	second, err := Disassemble(w, profile.V2)
	require.NoError(t, err)

	assert.Equal(t, first.Tracks(), second.Tracks())
}

func TestDecodeSnapshot(t *testing.T) {
	ram := make([]byte, 0x10000)
	base := profile.ChronoTrigger.BaseOffset()
	putLE(ram, base, 0x3000)
	for i := 0; i < ChannelCount; i++ {
		putLE(ram, base+4+i*2, 0x3000)
	}
	ram[base+RelocatedHeaderLength] = 0xFE

	result, err := DecodeSnapshot(ram, profile.ChronoTrigger)
	require.NoError(t, err)
	require.NoError(t, result.Err())
	assert.Same(t, profile.ChronoTrigger, result.Profile)

	for _, track := range result.Tracks() {
		require.Len(t, track, 1)
		assert.Equal(t, event.KindEnd, track[0].Kind)
	}

	_, err = DecodeSnapshot(ram[:base+100], profile.ChronoTrigger)
	assert.ErrorIs(t, err, memory.ErrTruncated)
}
