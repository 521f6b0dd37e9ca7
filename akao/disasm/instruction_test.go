package disasm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-akao/akao/event"
)

func TestInstructionJSON(t *testing.T) {
	tests := []struct {
		name     string
		ins      Instruction
		expected string
	}{
		{
			name:     "note",
			ins:      Instruction{Kind: event.KindNote, Note: "C", Duration: 0xC0},
			expected: `{"event":"EVENT_NOTE","note":"C","duration":192}`,
		},
		{
			name:     "sharp note",
			ins:      Instruction{Kind: event.KindNote, Note: "F#", Duration: 3},
			expected: `{"event":"EVENT_NOTE","note":"F#","duration":3}`,
		},
		{
			name: "operands keep stream order",
			ins: Instruction{Kind: event.KindPitchSlideOn, Operands: []Operand{
				{Name: "semitones", Value: -12},
				{Name: "delay", Value: 5},
				{Name: "length", Value: 16},
			}},
			expected: `{"event":"EVENT_PITCH_SLIDE_ON","semitones":-12,"delay":5,"length":16}`,
		},
		{
			name:     "flag only",
			ins:      Instruction{Kind: event.KindEnd, Offset: 0x40, Opcode: 0xF8},
			expected: `{"event":"EVENT_END"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.ins)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestFormatInstruction(t *testing.T) {
	tests := []struct {
		ins      Instruction
		expected string
	}{
		{
			Instruction{Offset: 0x24, Kind: event.KindNote, Note: "C", Duration: 192},
			"0x0024: EVENT_NOTE C 192",
		},
		{
			Instruction{Offset: 0x100, Kind: event.KindGoto, Operands: []Operand{{Name: "addr", Value: 0x1234}}},
			"0x0100: EVENT_GOTO addr=0x1234",
		},
		{
			Instruction{Offset: 0x102, Kind: event.KindTransposeAbs, Operands: []Operand{{Name: "value", Value: -2}}},
			"0x0102: EVENT_TRANSPOSE_ABS value=-2",
		},
		{
			Instruction{Offset: 0x0FFF, Kind: event.KindEnd},
			"0x0FFF: EVENT_END",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatInstruction(tt.ins))
		})
	}
}

func TestTrackTerminator(t *testing.T) {
	_, ok := Track(nil).Terminator()
	assert.False(t, ok)

	last, ok := Track{{Kind: event.KindNote}, {Kind: event.KindEnd}}.Terminator()
	assert.True(t, ok)
	assert.Equal(t, event.KindEnd, last.Kind)
}
