package manager

import (
	"tilesnake/game/entity"
	"tilesnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the head of snake onto pos.
// The tail counts as occupied: it has not moved yet when the head arrives.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Contains(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a fruit may be placed at pos
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, fruits map[types.Point]struct{}) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Contains(pos) {
		return false
	}
	_, taken := fruits[pos]
	return !taken
}
