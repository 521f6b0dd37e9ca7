package disasm

import (
	"fmt"

	"github.com/valerio/go-akao/akao/memory"
	"github.com/valerio/go-akao/akao/profile"
)

const (
	// ChannelCount is the number of sequence channels of every driver version.
	ChannelCount = 8

	// RelocatedHeaderLength is the size of the version 4 header: base and end
	// addresses followed by the primary and duplicate track tables.
	RelocatedHeaderLength = 2*2 + ChannelCount*2 + ChannelCount*2
)

// TrackTable is the per-channel address table found at the start of the window.
type TrackTable struct {
	// Raw addresses as stored in the snapshot.
	Raw [ChannelCount]uint16
	// Addresses are the window offsets each channel starts at.
	Addresses [ChannelCount]int

	// version 4 only
	Relocated  bool
	Base       uint16
	End        uint16
	Duplicates [ChannelCount]uint16
}

// ResolveTrackTable reads the track address table in the layout the profile's
// driver version uses.
func ResolveTrackTable(w *memory.Window, p *profile.Profile) (*TrackTable, error) {
	c, err := w.Cursor(0)
	if err != nil {
		return nil, err
	}

	table := &TrackTable{Relocated: p.Relocated()}

	if table.Relocated {
		if table.Base, err = c.ReadU16LE(); err != nil {
			return nil, fmt.Errorf("reading address base: %w", err)
		}
		if table.End, err = c.ReadU16LE(); err != nil {
			return nil, fmt.Errorf("reading address end: %w", err)
		}
	}

	for i := range table.Raw {
		if table.Raw[i], err = c.ReadU16LE(); err != nil {
			return nil, fmt.Errorf("reading track %d address: %w", i, err)
		}
	}

	if !table.Relocated {
		for i, raw := range table.Raw {
			table.Addresses[i] = int(raw)
		}
		return table, nil
	}

	for i := range table.Duplicates {
		if table.Duplicates[i], err = c.ReadU16LE(); err != nil {
			return nil, fmt.Errorf("reading duplicate track %d address: %w", i, err)
		}
	}
	for i, raw := range table.Raw {
		table.Addresses[i] = Relocate(raw, table.Base)
	}

	return table, nil
}

// Relocate converts a version 4 track pointer into a window offset.
func Relocate(raw, base uint16) int {
	return int(raw) - int(base) + RelocatedHeaderLength
}
