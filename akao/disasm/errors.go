package disasm

import (
	"errors"
	"fmt"
)

// ErrProfileMismatch is matched by errors.Is for every ProfileMismatchError.
var ErrProfileMismatch = errors.New("profile mismatch")

// UnknownOpcodeError is returned when a control-range byte has no mapping in the active
// profile. The stream is desynchronized from there on.
type UnknownOpcodeError struct {
	Opcode  uint8
	Offset  int
	Profile string
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at offset 0x%04X for profile %s", e.Opcode, e.Offset, e.Profile)
}

// ProfileMismatchError is returned when a note opcode selects a note index outside the
// profile's note table, which means the snapshot was decoded with the wrong profile.
type ProfileMismatchError struct {
	Opcode    uint8
	Offset    int
	NoteIndex int
	Notes     int
	Profile   string
}

func (e *ProfileMismatchError) Error() string {
	return fmt.Sprintf("profile mismatch: opcode 0x%02X at offset 0x%04X selects note %d of %d in profile %s",
		e.Opcode, e.Offset, e.NoteIndex, e.Notes, e.Profile)
}

func (e *ProfileMismatchError) Is(target error) bool {
	return target == ErrProfileMismatch
}

// ChannelError ties a decode failure to the channel it happened on.
type ChannelError struct {
	Channel int
	Address int
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %d (start 0x%04X): %v", e.Channel, e.Address, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
