package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-akao/akao/spc"
)

const (
	headerSize = 0x100
	ramSize    = 0x10000
	dspSize    = 128
)

// writeSnapshot writes a minimal SPC file whose ff6 control block starts every channel
// at the same short stream.
func writeSnapshot(t *testing.T, stream ...byte) string {
	t.Helper()

	data := make([]byte, headerSize+ramSize+dspSize)
	copy(data, spc.Magic)
	data[0x24] = 30

	ram := data[headerSize:]
	block := ram[0x1C00:]
	block[0], block[1] = 0x00, 0x20 // base 0x2000
	for i := 0; i < 8; i++ {
		block[4+i*2], block[5+i*2] = 0x00, 0x20
	}
	copy(block[36:], stream)

	path := filepath.Join(t.TempDir(), "test.spc")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(append([]string{"spctab"}, args...))
	return out.String(), err
}

func TestRunPrintsTracks(t *testing.T) {
	path := writeSnapshot(t, 0x00, 0xFD)

	out, err := runApp(t, path)
	require.NoError(t, err)

	var tracks [][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tracks))
	require.Len(t, tracks, 8)
	for _, track := range tracks {
		require.Len(t, track, 2)
		assert.Equal(t, "EVENT_NOTE", track[0]["event"])
		assert.Equal(t, "C", track[0]["note"])
		assert.Equal(t, float64(0xC0), track[0]["duration"])
		assert.Equal(t, "EVENT_END", track[1]["event"])
	}
}

func TestRunListsProfiles(t *testing.T) {
	out, err := runApp(t, "--profiles")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "v1")
	assert.Contains(t, lines[2], "v4")
	assert.Contains(t, lines[2], "ram=0x1C00")
	assert.Contains(t, lines[3], "ram=0x2000")
	for _, line := range lines {
		assert.Contains(t, line, "floor=0x")
		assert.Contains(t, line, "opcodes=")
	}
}

func TestRunFileFlagAndIndent(t *testing.T) {
	path := writeSnapshot(t, 0xFD)

	out, err := runApp(t, "--indent", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  [\n")
}

func TestRunReportsFailedChannels(t *testing.T) {
	// 0xFD is a terminator for ff6 but maps to volume alt for chrono trigger,
	// whose operand then reads into zeroes that never end.
	path := writeSnapshot(t, 0xFD)

	out, err := runApp(t, "--game", "ct", "--ram-offset", "7168", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "some channels failed to decode")
	assert.Contains(t, out, "null")
}

func TestRunErrors(t *testing.T) {
	_, err := runApp(t)
	assert.EqualError(t, err, "no SPC file provided")

	path := writeSnapshot(t, 0xFD)
	_, err = runApp(t, "--game", "ff7", path)
	assert.Error(t, err)

	_, err = runApp(t, filepath.Join(t.TempDir(), "missing.spc"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.spc")
	require.NoError(t, os.WriteFile(bad, []byte("not an spc"), 0o644))
	_, err = runApp(t, bad)
	assert.ErrorIs(t, err, spc.ErrTruncated)
}
