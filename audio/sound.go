// Package audio plays short tones for game events.
package audio

import (
	"log"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note is a tone of Freq hertz lasting Length. Freq 0 is a rest.
type Note struct {
	Freq   float64
	Length time.Duration
}

var (
	eatTune     = []Note{{Freq: 880, Length: 50 * time.Millisecond}}
	crashTune   = []Note{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}}
	highTune    = []Note{{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 200 * time.Millisecond}}
	victoryTune = []Note{{784, 100 * time.Millisecond}, {0, 50 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 300 * time.Millisecond}}
)

// Sound turns game notifications into tones. A Sound that failed to open the
// speaker stays silent.
type Sound struct {
	game.NopObserver

	sampleRate beep.SampleRate
	play       func(...beep.Streamer)
}

// New opens the speaker. Audio is optional: failures are logged and the
// returned Sound is silent.
func New(mute bool) *Sound {
	if mute {
		return &Sound{sampleRate: sampleRate}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return &Sound{sampleRate: sampleRate}
	}
	return &Sound{sampleRate: sampleRate, play: speaker.Play}
}

// Enabled reports whether tones reach a speaker.
func (s *Sound) Enabled() bool {
	return s.play != nil
}

func (s *Sound) FoodEaten(int) {
	s.playTune(eatTune)
}

func (s *Sound) GameOver(_ int, cause types.CollisionType, newHigh bool) {
	switch {
	case cause == types.BoardFull:
		s.playTune(victoryTune)
	case newHigh:
		s.playTune(highTune)
	default:
		s.playTune(crashTune)
	}
}

// Close stops playback.
func (s *Sound) Close() {
	if s.play != nil {
		speaker.Clear()
	}
}

func (s *Sound) playTune(notes []Note) {
	if s.play == nil {
		return
	}
	tune, err := Melody(s.sampleRate, notes)
	if err != nil {
		log.Printf("Audio: %v", err)
		return
	}
	s.play(tune)
}

// Melody renders notes back to back.
func Melody(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.Freq == 0 {
			parts = append(parts, generators.Silence(sr.N(n.Length)))
			continue
		}
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(n.Length), tone))
	}
	return beep.Seq(parts...), nil
}
