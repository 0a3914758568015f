package systems

import (
	"testing"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/pathfind"
)

func TestMovementSystem_StepsAndStopsAtWalls(t *testing.T) {
	// Arrange
	grid := components.NewTileGrid(5, 5)
	grid.SetTile(3, 2, components.TileWall)

	world := ecs.NewWorld()
	id := spawnObserver(world, pathfind.Point{X: 1, Y: 2})

	var moves []ObserverMoveEvent
	world.GetEventManager().Subscribe(EventMovement, func(e ecs.Event) {
		moves = append(moves, e.(ObserverMoveEvent))
	})

	system := NewMovementSystem(grid)
	system.Queue(DirRight)
	system.Queue(DirRight) // blocked by the wall
	system.Queue(DirNone)
	system.Queue(DirDownRight)

	// Act
	system.Update(world, 0)

	// Assert
	comp, _ := world.GetComponent(id, components.Position)
	pos := comp.(*components.PositionComponent)
	if pos.X != 3 || pos.Y != 3 {
		t.Errorf("observer at (%d,%d), want (3,3)", pos.X, pos.Y)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d move events, want 2", len(moves))
	}
	if moves[1].FromX != 2 || moves[1].FromY != 2 || moves[1].ToX != 3 || moves[1].ToY != 3 {
		t.Errorf("second move = %+v", moves[1])
	}
	if system.Pending() != 0 {
		t.Errorf("pending = %d after update", system.Pending())
	}
}

func TestMovementSystem_CannotLeaveTheGrid(t *testing.T) {
	// Arrange
	world := ecs.NewWorld()
	id := spawnObserver(world, pathfind.Point{X: 0, Y: 0})
	system := NewMovementSystem(components.NewTileGrid(3, 3))
	system.Queue(DirUp)
	system.Queue(DirLeft)

	// Act
	system.Update(world, 0)

	// Assert
	comp, _ := world.GetComponent(id, components.Position)
	if pos := comp.(*components.PositionComponent); pos.X != 0 || pos.Y != 0 {
		t.Errorf("observer at (%d,%d), want (0,0)", pos.X, pos.Y)
	}
}
