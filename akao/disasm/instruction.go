package disasm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valerio/go-akao/akao/event"
)

// Operand is one decoded operand field.
type Operand struct {
	Name  string
	Value int
}

// Instruction is a single decoded event of a channel stream.
type Instruction struct {
	Offset   int // window offset of the opcode byte
	Opcode   uint8
	Kind     event.Kind
	Note     string // notes only
	Duration int    // notes only
	Operands []Operand
}

// Track is the ordered instruction list of one channel, ending with a GOTO or END.
type Track []Instruction

// Operand returns the value of the named operand.
func (i Instruction) Operand(name string) (int, bool) {
	for _, op := range i.Operands {
		if op.Name == name {
			return op.Value, true
		}
	}
	return 0, false
}

// MarshalJSON writes the instruction as an object with "event" first, followed by
// either the note fields or the operands in stream order.
func (i Instruction) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"event":`)
	name, _ := json.Marshal(i.Kind.String())
	buf.Write(name)

	if i.Kind == event.KindNote {
		note, err := json.Marshal(i.Note)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `,"note":%s,"duration":%d`, note, i.Duration)
	}

	for _, op := range i.Operands {
		key, err := json.Marshal(op.Name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `,%s:%d`, key, op.Value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Terminator returns the last instruction of the track.
func (t Track) Terminator() (Instruction, bool) {
	if len(t) == 0 {
		return Instruction{}, false
	}
	return t[len(t)-1], true
}

// FormatInstruction formats an instruction as a listing line.
func FormatInstruction(ins Instruction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%04X: %s", ins.Offset, ins.Kind)

	if ins.Kind == event.KindNote {
		fmt.Fprintf(&sb, " %s %d", ins.Note, ins.Duration)
		return sb.String()
	}

	for _, op := range ins.Operands {
		if op.Name == event.FieldAddr {
			fmt.Fprintf(&sb, " %s=0x%04X", op.Name, op.Value)
		} else {
			fmt.Fprintf(&sb, " %s=%d", op.Name, op.Value)
		}
	}
	return sb.String()
}
