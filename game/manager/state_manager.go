package manager

import (
	"tilesnake/game/types"
)

// StateManager tracks the engine lifecycle and score
type StateManager struct {
	state     types.State
	score     int
	highScore int
	games     int
}

func NewStateManager() *StateManager {
	return &StateManager{state: types.NotStarted}
}

// Start begins a new game, resetting the score
func (sm *StateManager) Start() {
	sm.state = types.Running
	sm.score = 0
	sm.games++
}

// TogglePause switches between Running and Paused. Other states are left alone.
func (sm *StateManager) TogglePause() types.State {
	switch sm.state {
	case types.Running:
		sm.state = types.Paused
	case types.Paused:
		sm.state = types.Running
	}
	return sm.state
}

// Stop ends the game, clearing score and pause
func (sm *StateManager) Stop() {
	sm.state = types.Stopped
	sm.score = 0
}

func (sm *StateManager) UpdateScore(delta int) int {
	sm.score += delta
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	return sm.score
}

func (sm *StateManager) GetState() types.State {
	return sm.state
}

func (sm *StateManager) IsPaused() bool {
	return sm.state == types.Paused
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

// GetHighScore is the best score of this process; it is never persisted
func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.games
}
