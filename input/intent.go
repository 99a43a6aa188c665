package input

import (
	"tilesnake/config"
	"tilesnake/game/types"
)

// Intent is what one input sample asks of the game
type Intent struct {
	Quit  bool
	Pause bool

	// Heading is valid when HasHeading is set: exactly one heading key was held
	Heading    types.Heading
	HasHeading bool
}

// Sampler reads a Source once per sample and resolves it into an Intent
type Sampler struct {
	src       Source
	mode      config.PauseMode
	pauseDown bool
}

func NewSampler(src Source, mode config.PauseMode) *Sampler {
	return &Sampler{src: src, mode: mode}
}

// Sample reads the held keys once. In edge mode pause fires only on the
// sample where the key goes down; in sampled mode it fires on every sample
// while held. Two or more held heading keys count as no heading.
func (s *Sampler) Sample() Intent {
	held := s.src.Held()

	var in Intent
	if held.Has(QuitKey) {
		in.Quit = true
		return in
	}

	pause := held.Has(PauseKey)
	switch s.mode {
	case config.PauseSampled:
		in.Pause = pause
	default:
		in.Pause = pause && !s.pauseDown
	}
	s.pauseDown = pause

	count := 0
	for k := range held {
		if h, ok := headings[k]; ok {
			in.Heading = h
			count++
		}
	}
	if count == 1 {
		in.HasHeading = true
	} else {
		in.Heading = types.Heading{}
	}
	return in
}
