package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/oliverbestmann/crashcourse"
	"github.com/oliverbestmann/crashcourse/audio"
	"github.com/pkg/profile"
)

func main() {
	cpuProfile := flag.Bool("profile", false, "write a cpu profile to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg := crashcourse.LoadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	slog.SetDefault(logger)

	player := ebitenPlayer{context: eaudio.NewContext(audio.SampleRate)}

	bank, err := loadBank(cfg, player)
	if err != nil {
		slog.Error("Failed to load sounds", slog.String("error", err.Error()))
		os.Exit(1)
	}

	game, err := newGame(cfg, bank, logger)
	if err != nil {
		slog.Error("Failed to build world", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ebiten.SetWindowTitle("crashcourse")
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)

	fmt.Println(ebiten.RunGame(game))
}

func loadBank(cfg crashcourse.Config, player audio.Player) (*audio.Bank, error) {
	if cfg.SoundDir != "" {
		return audio.LoadBank(player, cfg.Volume, cfg.SoundDir)
	}

	return audio.NewSynthBank(player, cfg.Volume, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))), nil
}
