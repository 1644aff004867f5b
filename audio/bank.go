package audio

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/oliverbestmann/crashcourse"
)

const SampleRate = 48_000

// Clip is a fully decoded stereo sound held in memory.
type Clip struct {
	Config  StreamConfig
	Samples []float32
}

// Reader returns the raw interleaved float32 samples of the clip. The reader
// shares memory with the clip, the samples must not be modified while it is
// in use.
func (c *Clip) Reader() *bytes.Reader {
	return bytes.NewReader(SamplesAsBytes(c.Samples))
}

// Player starts playback of a clip. Each call starts a new playback, so
// overlapping crashes do not cut each other off.
type Player interface {
	Play(clip *Clip, volume float64)
}

// Sound is a clip bound to a player and a volume.
type Sound struct {
	Name   string
	Clip   *Clip
	player Player
	volume *float64
}

var _ crashcourse.Sound = (*Sound)(nil)

func (s *Sound) Play() {
	s.player.Play(s.Clip, *s.volume)
}

// Bank holds the object sounds: one crash per material and the ping.
type Bank struct {
	player Player

	volume       float64
	objectVolume float64

	crashes []*Sound
	ping    *Sound
}

var _ crashcourse.SoundBank = (*Bank)(nil)

// NewSynthBank creates a bank with procedurally generated sounds.
func NewSynthBank(player Player, volume float64, rng *rand.Rand) *Bank {
	rate := beep.SampleRate(SampleRate)

	clips := map[string]*Clip{"ping": Render(Ping(rate), rate)}
	for _, material := range Materials {
		clips[material.String()+"Crash"] = Render(Crash(material, rate, rng), rate)
	}

	return newBank(player, volume, clips)
}

// LoadBank loads <material>Crash and ping sound files from dir. Any of
// wav, ogg or mp3 is accepted.
func LoadBank(player Player, volume float64, dir string) (*Bank, error) {
	clips := map[string]*Clip{}

	names := []string{"ping"}
	for _, material := range Materials {
		names = append(names, material.String()+"Crash")
	}

	for _, name := range names {
		clip, err := loadFirst(dir, name)
		if err != nil {
			return nil, err
		}

		clips[name] = clip
	}

	return newBank(player, volume, clips), nil
}

func loadFirst(dir, name string) (*Clip, error) {
	for _, ext := range []string{".wav", ".ogg", ".mp3"} {
		matches, _ := filepath.Glob(filepath.Join(dir, name+ext))
		if len(matches) == 0 {
			continue
		}

		clip, err := LoadFile(matches[0], SampleRate)
		if err != nil {
			return nil, err
		}

		slog.Debug("Loaded sound",
			slog.String("path", matches[0]),
			slog.Duration("duration", clip.Config.Duration()),
		)

		return clip, nil
	}

	return nil, fmt.Errorf("no sound file for %q in %q", name, dir)
}

func newBank(player Player, volume float64, clips map[string]*Clip) *Bank {
	bank := &Bank{
		player:       player,
		volume:       volume,
		objectVolume: volume,
	}

	for _, material := range Materials {
		name := material.String() + "Crash"
		bank.crashes = append(bank.crashes, &Sound{
			Name:   name,
			Clip:   clips[name],
			player: player,
			volume: &bank.objectVolume,
		})
	}

	bank.ping = &Sound{
		Name:   "ping",
		Clip:   clips["ping"],
		player: player,
		volume: &bank.volume,
	}

	return bank
}

func (b *Bank) Crashes() []crashcourse.Sound {
	sounds := make([]crashcourse.Sound, 0, len(b.crashes))
	for _, crash := range b.crashes {
		sounds = append(sounds, crash)
	}

	return sounds
}

func (b *Bank) Ping() crashcourse.Sound {
	return b.ping
}

// SetObjectVolumes scales the crash volume down relative to the ping.
func (b *Bank) SetObjectVolumes() {
	b.objectVolume = b.volume * 0.6
}

func (b *Bank) ObjectVolume() float64 {
	return b.objectVolume
}
