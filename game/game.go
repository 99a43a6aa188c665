// Package game runs the snake simulation and drives a ui.Renderer.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"tilesnake/config"
	"tilesnake/game/entity"
	"tilesnake/game/manager"
	"tilesnake/game/types"
	"tilesnake/input"
	"tilesnake/ui"
)

var (
	// ErrQuit is returned by Start when the quit key was pressed
	ErrQuit = errors.New("quit requested")

	// ErrInvalidRenderer is returned by NewGame for an unusable renderer
	ErrInvalidRenderer = errors.New("invalid renderer")
)

// Listener is notified of game events. Calls happen on the game goroutine.
type Listener interface {
	GameStarted(session string)
	FruitEaten(score int)
	GameOver(score int, cause types.CollisionType)
}

// Listeners fans events out to several listeners
type Listeners []Listener

func (ls Listeners) GameStarted(session string) {
	for _, l := range ls {
		l.GameStarted(session)
	}
}

func (ls Listeners) FruitEaten(score int) {
	for _, l := range ls {
		l.FruitEaten(score)
	}
}

func (ls Listeners) GameOver(score int, cause types.CollisionType) {
	for _, l := range ls {
		l.GameOver(score, cause)
	}
}

type textures struct {
	grass, snake, fruit ui.Texture
}

type Game struct {
	cfg      config.Game
	grid     types.Grid
	textures textures

	renderer ui.Renderer
	sampler  *input.Sampler

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	heading     types.Heading
	lastHeading types.Heading
	lastCause   types.CollisionType

	rng     *rand.Rand
	session string

	// Listener receives fruit and game over events; nil disables them
	Listener Listener

	// Sleep waits between input samples. It returns early with the
	// context's error when ctx is cancelled.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewGame checks the configuration and wires the managers. The game does
// not touch the renderer until Start.
func NewGame(renderer ui.Renderer, keys input.Source, cfg config.Game) (*Game, error) {
	if renderer == nil {
		return nil, fmt.Errorf("%w: %T", ErrInvalidRenderer, renderer)
	}
	if keys == nil {
		return nil, fmt.Errorf("invalid key source: %T", keys)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	var tex textures
	for _, t := range []struct {
		id  string
		dst *ui.Texture
	}{
		{cfg.GrassTexture, &tex.grass},
		{cfg.SnakeTexture, &tex.snake},
		{cfg.FruitTexture, &tex.fruit},
	} {
		v, err := ui.ParseTexture(t.id)
		if err != nil {
			return nil, fmt.Errorf("game config: %w", err)
		}
		*t.dst = v
	}

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		textures:     tex,
		renderer:     renderer,
		sampler:      input.NewSampler(keys, cfg.Pause),
		snake:        entity.NewSnake(nil),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
		Sleep:        sleepContext,
	}
	g.Seed(uint64(time.Now().UnixNano()))
	return g, nil
}

// Seed replaces the random source used for fruit placement
func (g *Game) Seed(seed uint64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.foodMgr = manager.NewFoodManager(g.grid, g.cfg.FruitCount, g.rng, g.collisionMgr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Start plays until the snake dies. It returns nil after a loss, ErrQuit
// when the quit key is pressed and the context error on cancellation.
// With on_loss = restart a new game begins after each loss instead.
func (g *Game) Start(ctx context.Context) error {
	for {
		g.spawn()
		if err := g.render(); err != nil {
			return err
		}
		if err := g.mainLoop(ctx); err != nil {
			return err
		}
		if g.cfg.OnLoss != config.LossRestart {
			return nil
		}
	}
}

// spawn lays out a fresh snake and fruit and enters Running
func (g *Game) spawn() {
	g.snake = entity.SpawnSnake(g.cfg.InitSnakeSize, g.grid.Height/2)
	g.heading = types.Right
	g.lastHeading = types.Right
	g.lastCause = types.NoCollision
	g.foodMgr.Clear()
	g.foodMgr.Fill(g.snake)
	g.stateMgr.Start()
	g.session = uuid.NewString()
	log.Printf("game: session %s started on %dx%d grid, game %d",
		g.session, g.grid.Width, g.grid.Height, g.stateMgr.GetGamesPlayed())
	if g.Listener != nil {
		g.Listener.GameStarted(g.session)
	}
}

func (g *Game) mainLoop(ctx context.Context) error {
	for !g.snake.Empty() {
		if err := g.acceptInput(ctx); err != nil {
			return err
		}
		if g.stateMgr.IsPaused() {
			continue
		}
		g.Update()
		if err := g.render(); err != nil {
			return err
		}
	}
	return nil
}

// acceptInput samples the keys DelayDiv times, one sample delay apart
func (g *Game) acceptInput(ctx context.Context) error {
	for i := 0; i < g.cfg.DelayDiv; i++ {
		in := g.sampler.Sample()
		if in.Quit {
			log.Printf("game: session %s quit", g.session)
			return ErrQuit
		}
		if in.Pause {
			if err := g.togglePause(); err != nil {
				return err
			}
		}
		if in.HasHeading {
			g.SetDirection(in.Heading)
		}
		if err := g.Sleep(ctx, g.cfg.SampleDelay()); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) togglePause() error {
	state := g.stateMgr.TogglePause()
	log.Printf("game: session %s %v", g.session, state)
	if state == types.Paused {
		return g.render()
	}
	return nil
}

// SetDirection sets the heading for the next step. A reversal of the last
// applied heading is ignored and reported as false.
func (g *Game) SetDirection(h types.Heading) bool {
	if h == g.lastHeading.Opposite() {
		return false
	}
	g.heading = h
	return true
}

// Update advances the simulation one step and reports whether the snake survived
func (g *Game) Update() bool {
	if g.snake.Empty() {
		return false
	}

	newHead := g.snake.GetHead().Add(g.heading)
	if cause := g.collisionMgr.CheckCollision(newHead, g.snake); cause != types.NoCollision {
		g.stop(cause)
		return false
	}

	ate := g.foodMgr.RemoveFood(newHead)
	if !ate {
		g.snake.RemoveTail()
	}
	g.snake.Move(newHead)
	g.lastHeading = g.heading

	if ate {
		score := g.stateMgr.UpdateScore(1)
		g.foodMgr.SpawnFood(g.snake)
		if g.Listener != nil {
			g.Listener.FruitEaten(score)
		}
	}
	return true
}

// stop ends the game: the snake and fruit are cleared and the score reset
func (g *Game) stop(cause types.CollisionType) {
	score := g.stateMgr.GetScore()
	log.Printf("game: session %s over, %s collision, score %d", g.session, cause, score)

	g.snake.Clear()
	g.foodMgr.Clear()
	g.stateMgr.Stop()
	g.lastCause = cause
	if g.Listener != nil {
		g.Listener.GameOver(score, cause)
	}
}

// render rebuilds the renderer's scene from the current state
func (g *Game) render() error {
	r := g.renderer
	if err := r.SetScene(g.grid.Width, g.grid.Height, g.textures.grass); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := r.AddTiles(g.snake.Body(), g.textures.snake); err != nil {
		return fmt.Errorf("render snake: %w", err)
	}
	if err := r.AddTiles(g.foodMgr.GetFoodList(), g.textures.fruit); err != nil {
		return fmt.Errorf("render fruit: %w", err)
	}
	if g.cfg.ShowScore {
		if err := r.AddText(0, 0, g.statusLine()); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}
	if g.stateMgr.IsPaused() {
		if err := r.AddText(0, g.grid.Height/2, "paused"); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}
	if err := r.RenderScene(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (g *Game) statusLine() string {
	return fmt.Sprintf("%d/%d", g.stateMgr.GetScore(), g.stateMgr.GetHighScore())
}

// GetSnake returns the body, head first
func (g *Game) GetSnake() []types.Point {
	return g.snake.Body()
}

func (g *Game) GetFood() []types.Point {
	return g.foodMgr.GetFoodList()
}

func (g *Game) GetScore() int {
	return g.stateMgr.GetScore()
}

func (g *Game) GetState() types.State {
	return g.stateMgr.GetState()
}

func (g *Game) GetHeading() types.Heading {
	return g.heading
}

// LastCollision is the cause of the most recent loss
func (g *Game) LastCollision() types.CollisionType {
	return g.lastCause
}

// Session is the id of the current game
func (g *Game) Session() string {
	return g.session
}

func (g *Game) Grid() types.Grid {
	return g.grid
}
