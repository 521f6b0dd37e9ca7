package spc

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// ID666 is the text form of the metadata tag stored in the SPC header.
type ID666 struct {
	Title    string
	Game     string
	Dumper   string
	Comments string
	Date     time.Time // zero when missing or unparsable
	Playtime int       // seconds
	Fade     int       // milliseconds
	Artist   string

	DisableDefaultChannel bool
	Emulator              uint8
}

// field widths of the text tag, in order
const (
	titleLen    = 32
	gameLen     = 32
	dumperLen   = 16
	commentsLen = 32
	dateLen     = 11
	playtimeLen = 3
	fadeLen     = 5
	artistLen   = 32
)

var dateLayouts = []string{"01/02/2006", "20060102", "2006-01-02", "01/02/06"}

func parseID666(tag []byte) ID666 {
	pos := 0
	next := func(n int) []byte {
		b := tag[pos : pos+n]
		pos += n
		return b
	}

	id := ID666{
		Title:    text(next(titleLen)),
		Game:     text(next(gameLen)),
		Dumper:   text(next(dumperLen)),
		Comments: text(next(commentsLen)),
		Date:     date(text(next(dateLen))),
		Playtime: number(text(next(playtimeLen))),
		Fade:     number(text(next(fadeLen))),
		Artist:   text(next(artistLen)),
	}
	id.DisableDefaultChannel = next(1)[0] != 0
	id.Emulator = next(1)[0]

	return id
}

func text(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

func number(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func date(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
