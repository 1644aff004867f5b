package crashcourse

import (
	"math/rand/v2"
)

// ScoreSource exposes the current points.
type ScoreSource interface {
	ShowPoints() int
}

type Sound interface {
	Play()
}

// SoundBank provides the sounds ObjectSounds chooses from.
type SoundBank interface {
	Crashes() []Sound
	Ping() Sound
	SetObjectVolumes()
}

// ObjectSounds watches a score and plays a crash whenever the score went up
// and a ping whenever it went down.
type ObjectSounds struct {
	score   ScoreSource
	tracker int

	bank    SoundBank
	crashes []Sound
	ping    Sound

	rand *rand.Rand
}

type ObjectSoundsOption func(s *ObjectSounds)

// WithRand sets the random source used to select a crash sound.
func WithRand(rng *rand.Rand) ObjectSoundsOption {
	return func(s *ObjectSounds) {
		s.rand = rng
	}
}

func NewObjectSounds(score ScoreSource, bank SoundBank, options ...ObjectSoundsOption) *ObjectSounds {
	s := &ObjectSounds{
		score:   score,
		tracker: score.ShowPoints(),
		bank:    bank,
		crashes: bank.Crashes(),
		ping:    bank.Ping(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *ObjectSounds) SetObjectVols() {
	s.bank.SetObjectVolumes()
}

// LoadObjectSounds polls the score once and plays the matching sound.
func (s *ObjectSounds) LoadObjectSounds() {
	points := s.score.ShowPoints()

	switch {
	case points > s.tracker:
		if crash := s.selectCrash(); crash != nil {
			crash.Play()
		}

	case points < s.tracker:
		if s.ping != nil {
			s.ping.Play()
		}
	}

	s.tracker = points
}

func (s *ObjectSounds) selectCrash() Sound {
	if len(s.crashes) == 0 {
		return nil
	}

	var idx int
	if s.rand != nil {
		idx = s.rand.IntN(len(s.crashes))
	} else {
		idx = rand.IntN(len(s.crashes))
	}

	return s.crashes[idx]
}
