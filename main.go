package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"snake-classic/audio"
	"snake-classic/game"
	"snake-classic/store"
	"snake-classic/ui"
	"snake-classic/ui/term"
	"snake-classic/ui/window"

	"github.com/gdamore/tcell/v2"
)

type options struct {
	ui        string
	storePath string
	tiles     int
	seed      uint64
	autopilot bool
	mute      bool
	logPath   string
	width     int
	height    int
}

func main() {
	var opts options
	flag.StringVar(&opts.ui, "ui", "window", "Front end: window (raylib) or term (terminal)")
	flag.StringVar(&opts.storePath, "store", store.DefaultPath, "High score file; empty keeps scores in memory")
	flag.IntVar(&opts.tiles, "tiles", 24, "Cells per side of the board")
	flag.Uint64Var(&opts.seed, "seed", 0, "Food placement seed (0 = time based)")
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Let the computer steer")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.StringVar(&opts.logPath, "log", "", "Log file (term mode defaults to data/snake.log)")
	flag.IntVar(&opts.width, "width", 800, "Window width in pixels")
	flag.IntVar(&opts.height, "height", 860, "Window height in pixels")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	if opts.ui != "window" && opts.ui != "term" {
		return fmt.Errorf("unknown -ui %q, want window or term", opts.ui)
	}

	// The terminal owns stderr while it is drawn, so log to a file there.
	if opts.logPath == "" && opts.ui == "term" {
		opts.logPath = filepath.Join("data", "snake.log")
	}
	if opts.logPath != "" {
		closeLog, err := logToFile(opts.logPath)
		if err != nil {
			return err
		}
		defer closeLog()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var scores store.ScoreStore
	if opts.storePath != "" {
		jsonStore := store.NewJSONStore(opts.storePath)
		logHistory(jsonStore)
		defer logHistory(jsonStore)
		scores = jsonStore
	} else {
		scores = store.NewMemory(0)
	}

	sound := audio.New(opts.mute)
	defer sound.Close()

	cfg := game.DefaultConfig()
	cfg.TileCount = opts.tiles
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	g := game.New(cfg, scores, sound)
	ctrl := ui.NewController(g, opts.autopilot)

	log.Printf("Starting %s game: %dx%d board, high score %d", opts.ui, g.Config().TileCount, g.Config().TileCount, g.HighScore())

	switch opts.ui {
	case "term":
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		return term.Run(ctx, g, ctrl, screen)
	default:
		return window.Run(ctx, g, ctrl, opts.width, opts.height)
	}
}

func logToFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// logHistory writes a one-line summary of the recorded games.
func logHistory(s *store.JSONStore) {
	history, err := s.History()
	if err != nil {
		log.Printf("Warning: could not read game history: %v", err)
		return
	}
	sum := store.Summarize(history)
	log.Printf("History: %d games, best %d, avg %.1f, median %.1f, avg duration %s",
		sum.Games, sum.MaxScore, sum.AverageScore, sum.MedianScore, sum.AverageDuration.Round(time.Second))
}
