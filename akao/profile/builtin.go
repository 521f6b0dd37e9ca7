package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in profiles.
var (
	V1 = mustNew(Definition{
		Name:       "v1",
		Version:    1,
		Opcodes:    opcodesV1,
		Notes:      notesV12,
		Durations:  durationsV1,
		BaseOffset: 0x2000,
	})

	V2 = mustNew(Definition{
		Name:       "v2",
		Version:    2,
		Opcodes:    opcodesV2,
		Notes:      notesV12,
		Durations:  durationsV23,
		BaseOffset: 0x2000,
	})

	FinalFantasy6 = mustNew(Definition{
		Name:       "ff6",
		Version:    4,
		Opcodes:    overlay(opcodesV4Common, opcodesFinalFantasy6),
		Notes:      notesV34,
		Durations:  durationsV4,
		BaseOffset: 0x1C00,
		Layouts:    layoutsV4,
	})

	ChronoTrigger = mustNew(Definition{
		Name:       "ct",
		Version:    4,
		Opcodes:    overlay(opcodesV4Common, opcodesChronoTrigger),
		Notes:      notesV34,
		Durations:  durationsV4,
		BaseOffset: 0x2000,
		Layouts:    layoutsV4,
	})
)

var byName = map[string]*Profile{
	"v1":            V1,
	"ff4":           V1,
	"v2":            V2,
	"v3":            V2,
	"ff6":           FinalFantasy6,
	"ct":            ChronoTrigger,
	"chronotrigger": ChronoTrigger,
}

// Builtin returns the four built-in profiles.
func Builtin() []*Profile {
	return []*Profile{V1, V2, FinalFantasy6, ChronoTrigger}
}

// Lookup returns the built-in profile registered under name (case insensitive).
func Lookup(name string) (*Profile, error) {
	p, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns every name accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
