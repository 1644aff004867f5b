package main

import (
	"log/slog"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/oliverbestmann/crashcourse/audio"
)

// ebitenPlayer plays clips on an ebiten audio context.
type ebitenPlayer struct {
	context *eaudio.Context
}

func (p ebitenPlayer) Play(clip *audio.Clip, volume float64) {
	player, err := p.context.NewPlayerF32(clip.Reader())
	if err != nil {
		slog.Warn("Failed to create audio player", slog.String("error", err.Error()))
		return
	}

	player.SetVolume(max(0, min(1, volume)))
	player.Play()
}
