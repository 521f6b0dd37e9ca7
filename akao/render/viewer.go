package render

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-akao/akao/disasm"
)

const (
	headerRows = 2
	footerRows = 1
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleFailed  = styleDefault.Foreground(tcell.ColorRed)
	styleStatus  = styleDefault.Foreground(tcell.ColorGray)
	styleTerm    = styleDefault.Foreground(tcell.ColorYellow)
)

const helpLine = "<-/-> or 1-8: channel   up/down pgup/pgdn home/end: scroll   q: quit"

// Viewer is an interactive terminal browser for a disassembly result.
type Viewer struct {
	screen  tcell.Screen
	result  *disasm.Result
	logs    *LogBuffer
	channel int
	scroll  int
}

// NewTerminalViewer opens the terminal and returns a viewer drawing to it.
func NewTerminalViewer(result *disasm.Result, logs *LogBuffer) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return NewViewer(screen, result, logs), nil
}

// NewViewer creates a viewer on an already initialized screen. logs may be nil.
func NewViewer(screen tcell.Screen, result *disasm.Result, logs *LogBuffer) *Viewer {
	screen.SetStyle(styleDefault)
	return &Viewer{
		screen: screen,
		result: result,
		logs:   logs,
	}
}

// Channel returns the channel currently shown.
func (v *Viewer) Channel() int {
	return v.channel
}

// Scroll returns the index of the first visible line.
func (v *Viewer) Scroll() int {
	return v.scroll
}

// SetChannel switches to channel, wrapping around the channel count.
func (v *Viewer) SetChannel(channel int) {
	v.channel = (channel%disasm.ChannelCount + disasm.ChannelCount) % disasm.ChannelCount
	v.scroll = 0
}

// Run draws and processes input until the user quits. The screen is finalized on return.
func (v *Viewer) Run() error {
	defer func() {
		slog.Info("Closing viewer")
		v.screen.Fini()
	}()

	for {
		v.Draw()
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	page := v.pageSize()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight, tcell.KeyTab:
		v.SetChannel(v.channel + 1)
	case tcell.KeyLeft, tcell.KeyBacktab:
		v.SetChannel(v.channel - 1)
	case tcell.KeyDown:
		v.scrollBy(1)
	case tcell.KeyUp:
		v.scrollBy(-1)
	case tcell.KeyPgDn:
		v.scrollBy(page)
	case tcell.KeyPgUp:
		v.scrollBy(-page)
	case tcell.KeyHome:
		v.scroll = 0
	case tcell.KeyEnd:
		v.scrollBy(len(v.lines()))
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r >= '1' && r <= '8':
			v.SetChannel(int(r - '1'))
		case r == 'j':
			v.scrollBy(1)
		case r == 'k':
			v.scrollBy(-1)
		}
	}
	return false
}

func (v *Viewer) scrollBy(delta int) {
	maxScroll := len(v.lines()) - v.pageSize()
	if maxScroll < 0 {
		maxScroll = 0
	}

	v.scroll += delta
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

func (v *Viewer) pageSize() int {
	_, h := v.screen.Size()
	if page := h - headerRows - footerRows; page > 0 {
		return page
	}
	return 1
}

func (v *Viewer) lines() []string {
	ch := v.result.Channels[v.channel]
	if ch.Err != nil {
		return []string{ch.Err.Error()}
	}

	lines := make([]string, len(ch.Track))
	for i, ins := range ch.Track {
		lines[i] = disasm.FormatInstruction(ins)
	}
	return lines
}

// Draw renders the current state into the screen buffer without showing it.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	x := drawText(v.screen, 0, 0, w, styleDefault, v.result.Profile.String()+" ")
	for i, ch := range v.result.Channels {
		style := styleDefault
		if ch.Err != nil {
			style = styleFailed
		}
		if i == v.channel {
			style = style.Reverse(true)
		}
		x = drawText(v.screen, x, 0, w, style, fmt.Sprintf(" %d ", i+1))
	}

	ch := v.result.Channels[v.channel]
	summary := fmt.Sprintf("channel %d start=0x%04X instructions=%d", v.channel+1, ch.Address, len(ch.Track))
	if last, ok := ch.Track.Terminator(); ok {
		summary += " ends=" + last.Kind.String()
	}
	if ch.Err != nil {
		summary = fmt.Sprintf("channel %d start=0x%04X failed", v.channel+1, ch.Address)
	}
	drawText(v.screen, 0, 1, w, styleStatus, summary)

	lines := v.lines()
	for row := 0; row < v.pageSize() && v.scroll+row < len(lines); row++ {
		style := styleDefault
		idx := v.scroll + row
		switch {
		case ch.Err != nil:
			style = styleFailed
		case ch.Track[idx].Kind.Terminates():
			style = styleTerm
		}
		drawText(v.screen, 0, headerRows+row, w, style, lines[idx])
	}

	status := helpLine
	if v.logs != nil {
		if entry, ok := v.logs.Latest(); ok {
			status = FormatLogEntry(entry)
		}
	}
	drawText(v.screen, 0, h-1, w, styleStatus, status)
}

func drawText(screen tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	for _, r := range text {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
