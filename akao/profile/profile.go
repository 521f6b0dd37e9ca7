package profile

import (
	"errors"
	"fmt"

	"github.com/valerio/go-akao/akao/event"
)

// Definition is the raw data a Profile is built from.
type Definition struct {
	Name       string
	Version    int // driver version, 1 to 4
	Opcodes    map[uint8]event.Kind
	Notes      []string
	Durations  []int
	BaseOffset int // start of the control block inside the audio RAM

	// Layouts replaces the canonical operand layout of some kinds for this dialect.
	Layouts map[event.Kind]event.Layout
}

// Profile is the immutable opcode and format description of one driver dialect.
type Profile struct {
	name         string
	version      int
	opcodes      [256]event.Kind
	notes        []string
	durations    []int
	controlFloor uint8
	baseOffset   int
	layouts      map[event.Kind]event.Layout
}

// New validates a definition and builds a Profile from it. The control floor is the
// smallest mapped opcode.
func New(def Definition) (*Profile, error) {
	if len(def.Opcodes) == 0 {
		return nil, errors.New("profile has no opcodes")
	}
	if len(def.Notes) == 0 || len(def.Durations) == 0 {
		return nil, fmt.Errorf("profile %q: note and duration tables must not be empty", def.Name)
	}
	if def.Version < 1 || def.Version > 4 {
		return nil, fmt.Errorf("profile %q: unsupported driver version %d", def.Name, def.Version)
	}
	if def.BaseOffset < 0 {
		return nil, fmt.Errorf("profile %q: negative base offset", def.Name)
	}

	p := &Profile{
		name:         def.Name,
		version:      def.Version,
		notes:        append([]string(nil), def.Notes...),
		durations:    append([]int(nil), def.Durations...),
		controlFloor: 0xFF,
		baseOffset:   def.BaseOffset,
		layouts:      make(map[event.Kind]event.Layout, len(def.Layouts)),
	}

	for op, kind := range def.Opcodes {
		if !kind.Valid() || kind == event.KindNote {
			return nil, fmt.Errorf("profile %q: opcode 0x%02X maps to %s", def.Name, op, kind)
		}
		p.opcodes[op] = kind
		if op < p.controlFloor {
			p.controlFloor = op
		}
	}

	for kind, layout := range def.Layouts {
		p.layouts[kind] = append(event.Layout(nil), layout...)
	}

	return p, nil
}

func mustNew(def Definition) *Profile {
	p, err := New(def)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the profile's name.
func (p *Profile) Name() string {
	return p.name
}

// Version returns the driver version the profile describes.
func (p *Profile) Version() int {
	return p.version
}

// Relocated reports whether track addresses need the base-relative correction
// of the version 4 header.
func (p *Profile) Relocated() bool {
	return p.version >= 4
}

// KindOf looks up the event mapped to an opcode byte.
func (p *Profile) KindOf(opcode uint8) (event.Kind, bool) {
	k := p.opcodes[opcode]
	return k, k != event.KindInvalid
}

// Opcodes returns a copy of the opcode map.
func (p *Profile) Opcodes() map[uint8]event.Kind {
	m := make(map[uint8]event.Kind)
	for op, k := range p.opcodes {
		if k != event.KindInvalid {
			m[uint8(op)] = k
		}
	}
	return m
}

// Notes returns a copy of the note name table.
func (p *Profile) Notes() []string {
	return append([]string(nil), p.notes...)
}

// Durations returns a copy of the duration table.
func (p *Profile) Durations() []int {
	return append([]int(nil), p.durations...)
}

// Note returns the note name at index.
func (p *Profile) Note(index int) (string, bool) {
	if index < 0 || index >= len(p.notes) {
		return "", false
	}
	return p.notes[index], true
}

// Duration returns the tick length at index.
func (p *Profile) Duration(index int) (int, bool) {
	if index < 0 || index >= len(p.durations) {
		return 0, false
	}
	return p.durations[index], true
}

// DurationCount returns the length of the duration table.
func (p *Profile) DurationCount() int {
	return len(p.durations)
}

// ControlFloor returns the smallest opcode decoded as a control event.
func (p *Profile) ControlFloor() uint8 {
	return p.controlFloor
}

// BaseOffset returns where the control block starts in the audio RAM.
func (p *Profile) BaseOffset() int {
	return p.baseOffset
}

// Layout returns the operand layout of kind in this dialect.
func (p *Profile) Layout(kind event.Kind) event.Layout {
	if l, ok := p.layouts[kind]; ok {
		return l
	}
	return event.LayoutOf(kind)
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (v%d)", p.name, p.version)
}

// overlay returns a new map holding base with delta applied on top.
func overlay(base, delta map[uint8]event.Kind) map[uint8]event.Kind {
	m := make(map[uint8]event.Kind, len(base)+len(delta))
	for op, k := range base {
		m[op] = k
	}
	for op, k := range delta {
		m[op] = k
	}
	return m
}
