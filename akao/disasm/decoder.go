package disasm

import (
	"fmt"

	"github.com/valerio/go-akao/akao/event"
	"github.com/valerio/go-akao/akao/memory"
	"github.com/valerio/go-akao/akao/profile"
)

// DecodeTrack decodes the instruction stream starting at the given window offset until,
// and including, the first GOTO or END.
func DecodeTrack(w *memory.Window, start int, p *profile.Profile) (Track, error) {
	cursor, err := w.Cursor(start)
	if err != nil {
		return nil, err
	}

	var track Track
	for {
		ins, err := DecodeInstruction(cursor, p)
		if err != nil {
			return nil, err
		}

		track = append(track, ins)
		if ins.Kind.Terminates() {
			return track, nil
		}
	}
}

// DecodeInstruction decodes one instruction at the cursor and advances past it.
func DecodeInstruction(c *memory.Cursor, p *profile.Profile) (Instruction, error) {
	offset := c.Offset()
	opcode, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}

	if opcode < p.ControlFloor() {
		return decodeNote(opcode, offset, p)
	}

	kind, ok := p.KindOf(opcode)
	if !ok {
		return Instruction{}, &UnknownOpcodeError{Opcode: opcode, Offset: offset, Profile: p.Name()}
	}

	ins := Instruction{
		Offset: offset,
		Opcode: opcode,
		Kind:   kind,
	}

	layout := p.Layout(kind)
	if len(layout) > 0 {
		ins.Operands = make([]Operand, 0, len(layout))
	}
	for _, field := range layout {
		v, err := readField(c, field)
		if err != nil {
			return Instruction{}, fmt.Errorf("%s operand %s: %w", kind, field.Name, err)
		}
		ins.Operands = append(ins.Operands, Operand{Name: field.Name, Value: v})
	}

	return ins, nil
}

func decodeNote(opcode uint8, offset int, p *profile.Profile) (Instruction, error) {
	count := p.DurationCount()
	noteIndex := int(opcode) / count

	note, ok := p.Note(noteIndex)
	if !ok {
		return Instruction{}, &ProfileMismatchError{
			Opcode:    opcode,
			Offset:    offset,
			NoteIndex: noteIndex,
			Notes:     len(p.Notes()),
			Profile:   p.Name(),
		}
	}
	duration, _ := p.Duration(int(opcode) % count)

	return Instruction{
		Offset:   offset,
		Opcode:   opcode,
		Kind:     event.KindNote,
		Note:     note,
		Duration: duration,
	}, nil
}

func readField(c *memory.Cursor, f event.Field) (int, error) {
	switch {
	case f.Width == 2 && f.BigEndian:
		v, err := c.ReadU16BE()
		return int(v), err
	case f.Width == 2:
		v, err := c.ReadU16LE()
		return int(v), err
	case f.Signed:
		v, err := c.ReadI8()
		return int(v), err
	default:
		v, err := c.ReadU8()
		return int(v), err
	}
}
