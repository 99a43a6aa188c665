package config

import (
	"errors"
	"fmt"
	"time"
)

// PauseMode selects how the pause key is read
type PauseMode string

const (
	// PauseEdge toggles once per press
	PauseEdge PauseMode = "edge"
	// PauseSampled toggles on every input sample while the key is held
	PauseSampled PauseMode = "sampled"
)

// LossMode selects what happens when the snake dies
type LossMode string

const (
	LossReturn  LossMode = "return"
	LossRestart LossMode = "restart"
)

// Game holds the application parameters
type Game struct {
	// Delay is the time between simulation ticks
	Delay time.Duration

	// Width and Height are the grid size in tiles
	Width  int
	Height int

	FruitCount    int
	InitSnakeSize int

	// Texture identifiers from the renderer palette
	GrassTexture string
	SnakeTexture string
	FruitTexture string

	// DelayDiv is the number of input samples per tick
	DelayDiv int

	ShowScore bool
	Sound     bool
	Pause     PauseMode
	OnLoss    LossMode
}

// DefaultGame returns the built-in application parameters
func DefaultGame() Game {
	return Game{
		Delay:         500 * time.Millisecond,
		Width:         15,
		Height:        15,
		FruitCount:    1,
		InitSnakeSize: 4,
		GrassTexture:  "g",
		SnakeTexture:  "b",
		FruitTexture:  "r",
		DelayDiv:      10,
		Pause:         PauseEdge,
		OnLoss:        LossReturn,
	}
}

// GameFromValues overlays v on the defaults and validates the result
func GameFromValues(v Values) (Game, error) {
	g := DefaultGame()

	delay, err := v.Float("delay", g.Delay.Seconds())
	if err != nil {
		return g, err
	}
	g.Delay = time.Duration(delay * float64(time.Second))

	if g.Width, err = v.Int("length", g.Width); err != nil {
		return g, err
	}
	if g.Height, err = v.Int("height", g.Height); err != nil {
		return g, err
	}
	if g.FruitCount, err = v.Int("fruit_count", g.FruitCount); err != nil {
		return g, err
	}
	if g.InitSnakeSize, err = v.Int("init_snake_size", g.InitSnakeSize); err != nil {
		return g, err
	}
	if g.DelayDiv, err = v.Int("delay_div", g.DelayDiv); err != nil {
		return g, err
	}
	if g.ShowScore, err = v.Bool("show_score", g.ShowScore); err != nil {
		return g, err
	}
	if g.Sound, err = v.Bool("sound", g.Sound); err != nil {
		return g, err
	}

	g.GrassTexture = v.String("grass_texture", g.GrassTexture)
	g.SnakeTexture = v.String("snake_texture", g.SnakeTexture)
	g.FruitTexture = v.String("fruit_texture", g.FruitTexture)
	g.Pause = PauseMode(v.String("pause_mode", string(g.Pause)))
	g.OnLoss = LossMode(v.String("on_loss", string(g.OnLoss)))

	return g, g.Validate()
}

// Validate checks the parameters can describe a playable game
func (g Game) Validate() error {
	var errs []error
	if g.Delay <= 0 {
		errs = append(errs, fmt.Errorf("delay must be positive, got %v", g.Delay))
	}
	if g.Width < 0 || g.Height < 0 {
		errs = append(errs, fmt.Errorf("grid size must be non-negative, got %dx%d", g.Width, g.Height))
	}
	if g.Height < 1 || g.InitSnakeSize < 1 || g.InitSnakeSize >= g.Width {
		errs = append(errs, fmt.Errorf("initial snake of %d does not fit a %dx%d grid", g.InitSnakeSize, g.Width, g.Height))
	}
	if g.FruitCount < 0 {
		errs = append(errs, fmt.Errorf("fruit_count must be non-negative, got %d", g.FruitCount))
	}
	if g.DelayDiv < 1 {
		errs = append(errs, fmt.Errorf("delay_div must be at least 1, got %d", g.DelayDiv))
	}
	if g.Pause != PauseEdge && g.Pause != PauseSampled {
		errs = append(errs, fmt.Errorf("pause_mode must be %q or %q, got %q", PauseEdge, PauseSampled, g.Pause))
	}
	if g.OnLoss != LossReturn && g.OnLoss != LossRestart {
		errs = append(errs, fmt.Errorf("on_loss must be %q or %q, got %q", LossReturn, LossRestart, g.OnLoss))
	}
	return errors.Join(errs...)
}

// SampleDelay is the pause between two input samples
func (g Game) SampleDelay() time.Duration {
	return g.Delay / time.Duration(g.DelayDiv)
}
