package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"retro-snake/audio"
	"retro-snake/audio/speaker"
	"retro-snake/game"
	"retro-snake/game/timing"
	"retro-snake/game/types"
	"retro-snake/ui"
	"retro-snake/ui/terminal"
)

func main() {
	variant := flag.String("variant", "classic", "Game variant: classic or retro")
	shell := flag.String("ui", "window", "Presentation: window or terminal")
	speed := flag.Int("speed", int(types.DefaultTickInterval/time.Millisecond), "Snake step interval in milliseconds (lower = faster)")
	mute := flag.Bool("mute", false, "Disable sounds")
	assets := flag.String("assets", ".", "Directory holding Sounds/ and Graphics/")
	logFile := flag.String("log", "", "Write log to this file (terminal mode logs nowhere by default)")
	verbose := flag.Bool("v", false, "Log every food eaten")
	flag.Parse()

	settings, err := types.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *speed > 0 {
		settings.TickInterval = time.Duration(*speed) * time.Millisecond
	}

	logger, closeLog, err := newLogger(*logFile, *shell == "terminal")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	switch *shell {
	case "window":
		err = runWindow(settings, *assets, *mute, *verbose, logger)
	case "terminal":
		err = runTerminal(settings, *mute, *verbose, logger)
	default:
		err = fmt.Errorf("unknown ui %q", *shell)
	}
	if err != nil {
		logger.Error().Err(err).Msg("exit")
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger returns a stderr logger for the window, and a file or discard
// logger for the terminal, which owns the screen.
func newLogger(path string, quiet bool) (zerolog.Logger, func(), error) {
	if path == "" {
		if quiet {
			return zerolog.Nop(), func() {}, nil
		}
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}
		return zerolog.New(console).With().Timestamp().Logger(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return zerolog.New(f).With().Timestamp().Logger(), func() { f.Close() }, nil
}

func runWindow(settings types.Settings, assets string, mute, verbose bool, logger zerolog.Logger) error {
	win := ui.OpenWindow(settings, assets, logger)
	defer win.Close()

	var sounds audio.Player = audio.Silent{}
	if !mute {
		p, err := ui.NewSoundPlayer(assets)
		if err != nil {
			logger.Warn().Err(err).Msg("sound disabled")
		} else {
			sounds = p
		}
	}

	g := game.NewGame(settings,
		game.WithSounds(sounds),
		game.WithLogger(logger),
		game.WithVerbose(verbose),
	)
	defer g.Close()

	win.Run(g, timing.NewGate(timing.SystemClock{}, settings.TickInterval))
	return nil
}

func runTerminal(settings types.Settings, mute, verbose bool, logger zerolog.Logger) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	term, err := terminal.New(screen, settings, logger)
	if err != nil {
		return err
	}
	defer term.Close()

	var sounds audio.Player = audio.Silent{}
	if !mute {
		p, err := speaker.New()
		if err != nil {
			logger.Warn().Err(err).Msg("sound disabled")
		} else {
			sounds = p
		}
	}

	g := game.NewGame(settings,
		game.WithSounds(sounds),
		game.WithLogger(logger),
		game.WithVerbose(verbose),
	)
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term.Run(ctx, g, timing.NewGate(timing.SystemClock{}, settings.TickInterval))
	return nil
}
