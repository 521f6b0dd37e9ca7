package disasm

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/valerio/go-akao/akao/memory"
	"github.com/valerio/go-akao/akao/profile"
)

// Channel is the outcome of decoding one channel. Exactly one of Track and Err is set.
type Channel struct {
	Index   int
	Address int
	Track   Track
	Err     error
}

// Result is the disassembly of a whole snapshot.
type Result struct {
	Profile  *profile.Profile
	Table    *TrackTable
	Channels [ChannelCount]Channel
}

// Tracks returns the decoded tracks in channel order. Failed channels are nil.
func (r *Result) Tracks() []Track {
	tracks := make([]Track, ChannelCount)
	for i, ch := range r.Channels {
		tracks[i] = ch.Track
	}
	return tracks
}

// Err joins the errors of every failed channel, nil when all channels decoded.
func (r *Result) Err() error {
	var errs []error
	for _, ch := range r.Channels {
		if ch.Err != nil {
			errs = append(errs, ch.Err)
		}
	}
	return errors.Join(errs...)
}

// DecodeSnapshot captures the profile's control window from the audio RAM and
// disassembles every channel.
func DecodeSnapshot(ram []byte, p *profile.Profile) (*Result, error) {
	w, err := memory.NewWindow(ram, p.BaseOffset())
	if err != nil {
		return nil, err
	}
	return Disassemble(w, p)
}

// Disassemble resolves the track table and decodes all channels concurrently. The
// returned error only covers the track table; channel failures are reported per channel.
func Disassemble(w *memory.Window, p *profile.Profile) (*Result, error) {
	table, err := ResolveTrackTable(w, p)
	if err != nil {
		return nil, err
	}

	result := &Result{Profile: p, Table: table}

	var wg sync.WaitGroup
	for i, addr := range table.Addresses {
		wg.Add(1)
		go func(i, addr int) {
			defer wg.Done()
			result.Channels[i] = decodeChannel(w, p, i, addr)
		}(i, addr)
	}
	wg.Wait()

	return result, nil
}

func decodeChannel(w *memory.Window, p *profile.Profile, index, addr int) Channel {
	ch := Channel{Index: index, Address: addr}

	track, err := DecodeTrack(w, addr, p)
	if err != nil {
		ch.Err = &ChannelError{Channel: index, Address: addr, Err: err}
		slog.Warn("Failed to decode channel", "channel", index, "address", addr, "error", err)
		return ch
	}

	ch.Track = track
	slog.Debug("Decoded channel", "channel", index, "address", addr, "instructions", len(track))
	return ch
}
