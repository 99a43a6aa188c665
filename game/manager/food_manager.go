package manager

import (
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/rand"

	"tilesnake/game/entity"
	"tilesnake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	capacity     int
	fruits       map[types.Point]struct{}
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, capacity int, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		capacity:     capacity,
		fruits:       make(map[types.Point]struct{}, capacity),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SpawnFood places one fruit on a uniformly random free tile.
// It returns false when the set is already full or no tile is free.
func (fm *FoodManager) SpawnFood(snake *entity.Snake) (types.Point, bool) {
	if len(fm.fruits) >= fm.capacity {
		return types.Point{}, false
	}
	occupied := len(fm.fruits)
	if snake != nil {
		occupied += snake.Len()
	}
	if occupied >= fm.grid.Area() {
		return types.Point{}, false
	}

	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.fruits) {
			fm.fruits[food] = struct{}{}
			return food, true
		}
	}
}

// Fill spawns fruit until the configured count is reached or the board is full
func (fm *FoodManager) Fill(snake *entity.Snake) int {
	n := 0
	for {
		if _, ok := fm.SpawnFood(snake); !ok {
			return n
		}
		n++
	}
}

func (fm *FoodManager) IsFood(pos types.Point) bool {
	_, ok := fm.fruits[pos]
	return ok
}

// AddFood places a fruit at an explicit position, ignoring capacity
func (fm *FoodManager) AddFood(food types.Point) {
	fm.fruits[food] = struct{}{}
}

// RemoveFood deletes the fruit at food and reports whether there was one
func (fm *FoodManager) RemoveFood(food types.Point) bool {
	if _, ok := fm.fruits[food]; !ok {
		return false
	}
	delete(fm.fruits, food)
	return true
}

// GetFoodList returns the fruit positions in row-major order
func (fm *FoodManager) GetFoodList() []types.Point {
	list := maps.Keys(fm.fruits)
	sort.Slice(list, func(i, j int) bool {
		if list[i].Y != list[j].Y {
			return list[i].Y < list[j].Y
		}
		return list[i].X < list[j].X
	})
	return list
}

func (fm *FoodManager) Count() int {
	return len(fm.fruits)
}

func (fm *FoodManager) Clear() {
	clear(fm.fruits)
}
