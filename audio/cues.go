// Package audio plays short tones for game events.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"tilesnake/game/types"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine cue
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	FruitTone    = Tone{Freq: 880, Duration: 60 * time.Millisecond}
	GameOverTone = Tone{Freq: 220, Duration: 300 * time.Millisecond}
)

// Cues plays a tone when a fruit is eaten and when the game ends
type Cues struct {
	play func(beep.Streamer)
}

// NewCues opens the speaker. The game runs without sound when this fails.
func NewCues() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Cues{play: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

// Stream builds the sample stream for t
func (t Tone) Stream(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(t.Duration), sine), nil
}

func (c *Cues) playTone(t Tone) {
	s, err := t.Stream(sampleRate)
	if err != nil {
		log.Printf("audio: tone %v Hz: %v", t.Freq, err)
		return
	}
	c.play(s)
}

func (c *Cues) GameStarted(session string) {}

func (c *Cues) FruitEaten(score int) {
	c.playTone(FruitTone)
}

func (c *Cues) GameOver(score int, cause types.CollisionType) {
	c.playTone(GameOverTone)
}

func (c *Cues) Close() {
	speaker.Close()
}
