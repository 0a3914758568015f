package systems

import (
	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/pathfind"
)

// Direction constants for movement
const (
	DirNone = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// Tag names the systems look entities up by
const (
	TagObserver = "observer"
	TagAgent    = "agent"
)

// MovementSystem moves the observer one tile per queued direction. Viewers
// translate their own input into directions and queue them.
type MovementSystem struct {
	grid    pathfind.Grid
	pending []int
}

// NewMovementSystem creates a new movement system that refuses walls of grid
func NewMovementSystem(grid pathfind.Grid) *MovementSystem {
	return &MovementSystem{grid: grid}
}

// Queue schedules a step for the next update
func (s *MovementSystem) Queue(dir int) {
	if dir == DirNone {
		return
	}
	s.pending = append(s.pending, dir)
}

// Pending returns how many steps are waiting
func (s *MovementSystem) Pending() int {
	return len(s.pending)
}

// Update applies every queued step in order
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	if len(s.pending) == 0 {
		return
	}
	steps := s.pending
	s.pending = nil

	observers := world.GetEntitiesWithTag(TagObserver)
	if len(observers) == 0 {
		return
	}
	observerID := observers[0].ID

	comp, exists := world.GetComponent(observerID, components.Position)
	if !exists {
		return
	}
	position := comp.(*components.PositionComponent)

	for _, dir := range steps {
		dx, dy := DeltaFromDirection(dir)
		newX, newY := position.X+dx, position.Y+dy

		if s.grid != nil && s.grid.IsWall(newX, newY) {
			continue
		}

		oldX, oldY := position.X, position.Y
		position.X = newX
		position.Y = newY

		world.EmitEvent(ObserverMoveEvent{
			EntityID: observerID,
			FromX:    oldX,
			FromY:    oldY,
			ToX:      newX,
			ToY:      newY,
		})
	}
}

// DeltaFromDirection converts a direction to x,y deltas
func DeltaFromDirection(dir int) (dx, dy int) {
	switch dir {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return 1, -1
	case DirDownLeft:
		return -1, 1
	case DirDownRight:
		return 1, 1
	default:
		return 0, 0
	}
}
