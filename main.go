package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/orbit-collapse/internal/config"
	"github.com/iburimskiy/orbit-collapse/internal/game"
	"github.com/iburimskiy/orbit-collapse/internal/sound"
)

func main() {
	var (
		configPath = flag.String("config", "orbit.yaml", "path to settings yaml")
		mute       = flag.Bool("mute", false, "start without sound")
		volume     = flag.Float64("volume", 0.5, "cue volume 0..1")
		debug      = flag.Bool("debug", false, "show the debug overlay")
		fullscreen = flag.Bool("fullscreen", false, "start fullscreen")
		logLevel   = flag.String("log-level", "info", "trace | debug | info | warn | error")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("settings load failed; using defaults")
	}

	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mute":
			settings.Audio.Enabled = !*mute
		case "volume":
			settings.Audio.Volume = *volume
		case "debug":
			settings.DebugHUD = *debug
		case "fullscreen":
			settings.Window.Fullscreen = *fullscreen
		case "log-level":
			settings.LogLevel = *logLevel
		}
	})
	if err := settings.Validate(); err != nil {
		fatal(fmt.Errorf("invalid settings: %w", err))
	}
	lvl, _ := settings.Level()
	zerolog.SetGlobalLevel(lvl)

	var player *sound.Player
	if settings.Audio.Enabled {
		player, err = sound.NewPlayer(settings.Audio, log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable; running silent")
			player = nil
		}
	}
	defer player.Close()

	g, err := game.New(player, settings.DebugHUD, log.Logger)
	if err != nil {
		fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth*settings.Window.Scale, config.WindowHeight*settings.Window.Scale)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	log.Info().Bool("audio", player != nil).Bool("debug", settings.DebugHUD).Msg("starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
	log.Info().Msg("bye")
}

func fatal(err error) {
	log.Error().Err(err).Msg("fatal")
	_ = zenity.Error(err.Error(), zenity.Title("Orbit Collapse"))
	os.Exit(1)
}
