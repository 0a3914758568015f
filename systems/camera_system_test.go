package systems

import (
	"testing"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/pathfind"
)

func TestCameraSystem_CentresAndClamps(t *testing.T) {
	tests := []struct {
		name   string
		at     pathfind.Point
		wantX  int
		wantY  int
		inView pathfind.Point
	}{
		{"top left corner", pathfind.Point{X: 1, Y: 1}, 0, 0, pathfind.Point{X: 0, Y: 0}},
		{"middle", pathfind.Point{X: 30, Y: 20}, 25, 15, pathfind.Point{X: 30, Y: 20}},
		{"bottom right corner", pathfind.Point{X: 59, Y: 49}, 50, 40, pathfind.Point{X: 59, Y: 49}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			world := ecs.NewWorld()
			spawnObserver(world, tt.at)
			camera := NewCameraSystem(10, 10, 60, 50)

			// Act
			camera.Update(world, 0)

			// Assert
			if camera.X != tt.wantX || camera.Y != tt.wantY {
				t.Errorf("camera at (%d,%d), want (%d,%d)", camera.X, camera.Y, tt.wantX, tt.wantY)
			}
			if !camera.InView(tt.inView.X, tt.inView.Y) {
				t.Errorf("(%d,%d) should be in view", tt.inView.X, tt.inView.Y)
			}
		})
	}
}

func TestCameraSystem_EmitsOnScrollOnly(t *testing.T) {
	// Arrange
	world := ecs.NewWorld()
	id := spawnObserver(world, pathfind.Point{X: 30, Y: 20})
	camera := NewCameraSystem(10, 10, 60, 50)
	updates := 0
	world.GetEventManager().Subscribe(EventCameraUpdate, func(ecs.Event) { updates++ })

	// Act
	camera.Update(world, 0)
	camera.Update(world, 0)
	comp, _ := world.GetComponent(id, components.Position)
	comp.(*components.PositionComponent).X++
	camera.Update(world, 0)

	// Assert
	if updates != 2 {
		t.Errorf("got %d camera events, want 2", updates)
	}
	if x, y := camera.WorldToScreen(31, 20); x != 5 || y != 5 {
		t.Errorf("WorldToScreen = (%d,%d), want (5,5)", x, y)
	}
}

func TestCameraSystem_SmallMapPinsAtOrigin(t *testing.T) {
	// Arrange
	world := ecs.NewWorld()
	spawnObserver(world, pathfind.Point{X: 4, Y: 3})
	camera := NewCameraSystem(40, 24, 14, 6)

	// Act
	camera.Update(world, 0)

	// Assert
	if camera.X != 0 || camera.Y != 0 {
		t.Errorf("camera at (%d,%d), want origin", camera.X, camera.Y)
	}
}
