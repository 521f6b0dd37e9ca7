package spc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Magic is the signature every SPC snapshot starts with.
const Magic = "SNES-SPC700 Sound File Data v0.30\x1a\x1a"

const (
	supportedVersion = 30

	headerSize   = 0x100
	ramSize      = 0x10000
	dspSize      = 128
	unusedSize   = 64
	extraRAMSize = 64

	versionAddress   = 0x24
	registersAddress = 0x25
	id666Address     = 0x2E
)

var (
	ErrInvalidMagic       = errors.New("invalid SPC file header")
	ErrUnsupportedVersion = errors.New("unsupported SPC file version")
	ErrTruncated          = errors.New("truncated SPC file")
)

// Registers holds the SPC700 CPU registers at the time of the snapshot.
type Registers struct {
	PC  uint16
	A   uint8
	X   uint8
	Y   uint8
	PSW uint8
	SP  uint8
}

// File is a parsed SPC snapshot.
type File struct {
	HasID666  bool
	Version   uint8
	Registers Registers
	ID666     ID666
	RAM       []byte
	DSP       []byte
	ExtraRAM  []byte
}

// Load reads a complete SPC snapshot.
func Load(r io.Reader) (*File, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrTruncated, err)
	}

	if !bytes.Equal(header[:len(Magic)], []byte(Magic)) {
		return nil, ErrInvalidMagic
	}

	f := &File{
		HasID666: header[len(Magic)] == 0x1A,
		Version:  header[versionAddress],
	}
	if f.Version != supportedVersion {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrUnsupportedVersion, supportedVersion, f.Version)
	}

	regs := header[registersAddress:]
	f.Registers = Registers{
		PC:  binary.LittleEndian.Uint16(regs[0:2]),
		A:   regs[2],
		X:   regs[3],
		Y:   regs[4],
		PSW: regs[5],
		SP:  regs[6],
	}

	f.ID666 = parseID666(header[id666Address:headerSize])

	f.RAM = make([]byte, ramSize)
	if _, err := io.ReadFull(r, f.RAM); err != nil {
		return nil, fmt.Errorf("%w: reading RAM: %v", ErrTruncated, err)
	}

	f.DSP = make([]byte, dspSize)
	if _, err := io.ReadFull(r, f.DSP); err != nil {
		return nil, fmt.Errorf("%w: reading DSP registers: %v", ErrTruncated, err)
	}

	// the unused block and extra RAM are optional in older dumps
	tail := make([]byte, unusedSize+extraRAMSize)
	n, err := io.ReadFull(r, tail)
	switch {
	case err == nil:
		f.ExtraRAM = tail[unusedSize:]
	case errors.Is(err, io.ErrUnexpectedEOF):
		slog.Warn("Ignoring incomplete extra RAM", "have", n, "want", len(tail))
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("reading extra RAM: %w", err)
	}

	slog.Debug("Loaded SPC snapshot", "title", f.ID666.Title, "game", f.ID666.Game, "pc", f.Registers.PC)
	return f, nil
}

// LoadBytes parses an SPC snapshot held in memory.
func LoadBytes(data []byte) (*File, error) {
	return Load(bytes.NewReader(data))
}
