package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-akao/akao/disasm"
	"github.com/valerio/go-akao/akao/memory"
	"github.com/valerio/go-akao/akao/profile"
	"github.com/valerio/go-akao/akao/render"
	"github.com/valerio/go-akao/akao/spc"
)

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running spctab", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "spctab"
	app.Description = "Disassembles AKAO music sequences from SPC snapshots"
	app.Usage = "spctab [options] <SPC file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "file",
			Usage: "Path to the SPC file",
		},
		cli.StringFlag{
			Name:   "game, g",
			Usage:  "Driver profile to decode with (v1, ff4, v2, v3, ff6, ct)",
			Value:  "ff6",
			EnvVar: "SPCTAB_GAME",
		},
		cli.IntFlag{
			Name:  "ram-offset",
			Usage: "Override the RAM address of the sequence control block (-1 = profile default)",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "indent",
			Usage: "Pretty-print the JSON output",
		},
		cli.BoolFlag{
			Name:  "view",
			Usage: "Browse the decoded tracks in the terminal instead of printing JSON",
		},
		cli.IntFlag{
			Name:  "channel",
			Usage: "Channel (1-8) shown first in the viewer",
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "profiles",
			Usage: "List the built-in driver profiles and exit",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Before = setupLogging
	app.Action = runDisassembler
	return app
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

func runDisassembler(c *cli.Context) error {
	if c.Bool("profiles") {
		listProfiles(c.App.Writer)
		return nil
	}

	path := c.String("file")
	if path == "" {
		if c.NArg() > 0 {
			path = c.Args().First()
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no SPC file provided")
		}
	}

	p, err := profile.Lookup(c.String("game"))
	if err != nil {
		return err
	}

	result, err := decodeFile(path, p, c.Int("ram-offset"))
	if err != nil {
		return err
	}

	if c.Bool("view") {
		return view(result, c.Int("channel")-1)
	}

	if err := writeTracks(c.App.Writer, result, c.Bool("indent")); err != nil {
		return err
	}

	if err := result.Err(); err != nil {
		return fmt.Errorf("some channels failed to decode: %w", err)
	}
	return nil
}

func decodeFile(path string, p *profile.Profile, ramOffset int) (*disasm.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file '%s': %w", path, err)
	}
	defer file.Close()

	snapshot, err := spc.Load(file)
	if err != nil {
		return nil, fmt.Errorf("reading file '%s': %w", path, err)
	}

	base := p.BaseOffset()
	if ramOffset >= 0 {
		base = ramOffset
	}
	slog.Info("Decoding snapshot", "file", path, "profile", p.String(), "ram_offset", fmt.Sprintf("0x%04X", base))

	window, err := memory.NewWindow(snapshot.RAM, base)
	if err != nil {
		return nil, err
	}

	return disasm.Disassemble(window, p)
}

func listProfiles(w io.Writer) {
	for _, p := range profile.Builtin() {
		fmt.Fprintf(w, "%-14s v%d  floor=0x%02X  ram=0x%04X  opcodes=%d\n",
			p.Name(), p.Version(), p.ControlFloor(), p.BaseOffset(), len(p.Opcodes()))
	}
}

func writeTracks(w io.Writer, result *disasm.Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result.Tracks()); err != nil {
		return fmt.Errorf("encoding tracks: %w", err)
	}
	return nil
}

func view(result *disasm.Result, channel int) error {
	logs := render.NewLogBuffer(100)
	previous := slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(logs, slog.LevelInfo)))
	defer slog.SetDefault(previous)

	if err := result.Err(); err != nil {
		slog.Warn("Some channels failed to decode", "error", err)
	}

	viewer, err := render.NewTerminalViewer(result, logs)
	if err != nil {
		return err
	}
	viewer.SetChannel(channel)
	return viewer.Run()
}
