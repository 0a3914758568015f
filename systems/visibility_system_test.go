package systems

import (
	"math/rand"
	"testing"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
)

func TestVisibilitySystem_EmitsRegionChanges(t *testing.T) {
	// Arrange
	lvl := roomChain(t, 2)
	world := ecs.NewWorld()
	id := spawnObserver(world, pathfind.Point{X: 2, Y: 2})
	system := NewVisibilitySystem(lvl, rand.New(rand.NewSource(1)), nil)
	system.Initialize(world)

	var events []RegionChangedEvent
	world.GetEventManager().Subscribe(EventRegionChanged, func(e ecs.Event) {
		events = append(events, e.(RegionChangedEvent))
	})

	// Act
	system.Update(world, 0)
	system.Update(world, 0)
	comp, _ := world.GetComponent(id, components.Position)
	comp.(*components.PositionComponent).X = 6
	system.Update(world, 0)

	// Assert
	if len(events) != 2 {
		t.Fatalf("got %d region events, want 2", len(events))
	}
	if events[0].HadFrom || events[0].To != level.Room(0) {
		t.Errorf("first event = %+v, want entry into room 0", events[0])
	}
	if !events[1].HadFrom || events[1].From != level.Room(0) || events[1].To != level.Corridor(0) {
		t.Errorf("second event = %+v, want room 0 to corridor 0", events[1])
	}
	if cur, ok := system.Current(); !ok || cur != level.Corridor(0) {
		t.Errorf("Current = %v, %v", cur, ok)
	}
	if want := []level.RegionRef{level.Room(0), level.Corridor(0)}; !sameRefs(events[0].Adjacent, want) {
		t.Errorf("room 0 adjacent = %v, want %v", events[0].Adjacent, want)
	}
	if want := []level.RegionRef{level.Room(0), level.Room(1), level.Corridor(0)}; !sameRefs(events[1].Adjacent, want) {
		t.Errorf("corridor 0 adjacent = %v, want %v", events[1].Adjacent, want)
	}
}

func sameRefs(got, want []level.RegionRef) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestVisibilitySystem_KeepsRegionOutsideAllRegions(t *testing.T) {
	// Arrange
	lvl := roomChain(t, 2)
	world := ecs.NewWorld()
	id := spawnObserver(world, pathfind.Point{X: 2, Y: 2})
	system := NewVisibilitySystem(lvl, rand.New(rand.NewSource(1)), nil)
	system.Initialize(world)
	system.Update(world, 0)

	events := 0
	world.GetEventManager().Subscribe(EventRegionChanged, func(ecs.Event) { events++ })

	// Act
	comp, _ := world.GetComponent(id, components.Position)
	pos := comp.(*components.PositionComponent)
	pos.X, pos.Y = 0, 0 // room corner wall
	system.Update(world, 0)

	// Assert
	if events != 0 {
		t.Errorf("got %d region events on a wall tile", events)
	}
	if cur, ok := system.Current(); !ok || cur != level.Room(0) {
		t.Errorf("Current = %v, %v, want room 0", cur, ok)
	}
}

func TestVisibilitySystem_BuildsGeometryFromNearRegions(t *testing.T) {
	// Arrange
	lvl := roomChain(t, 3)
	world := ecs.NewWorld()
	id := spawnObserver(world, pathfind.Point{X: 2, Y: 2})
	system := NewVisibilitySystem(lvl, rand.New(rand.NewSource(1)), nil)
	system.Initialize(world)

	// Act
	system.Update(world, 0)

	// Assert
	want := []level.RegionRef{level.Room(0), level.Room(1), level.Corridor(0)}
	near := system.Near()
	if len(near) != len(want) {
		t.Fatalf("near = %v, want %v", near, want)
	}
	for i := range want {
		if near[i] != want[i] {
			t.Errorf("near[%d] = %v, want %v", i, near[i], want[i])
		}
	}

	comp, _ := world.GetComponent(id, components.Observer)
	source := comp.(*components.ObserverComponent).Source
	if got := source.Position(); got != lvl.TileCenter(pathfind.Point{X: 2, Y: 2}) {
		t.Errorf("ray source at %+v", got)
	}
	if len(source.Rays()) != 3*4*len(want) {
		t.Errorf("got %d rays, want three per corner", len(source.Rays()))
	}
}

func TestVisibilitySystem_FlagsVisibleAgents(t *testing.T) {
	// Arrange
	lvl := roomChain(t, 2)
	world := ecs.NewWorld()
	spawnObserver(world, pathfind.Point{X: 3, Y: 2})
	inLine := spawnAgent(world, 1, pathfind.Point{X: 10, Y: 2})
	behindWall := spawnAgent(world, 2, pathfind.Point{X: 10, Y: 1})
	system := NewVisibilitySystem(lvl, rand.New(rand.NewSource(1)), nil)
	system.Initialize(world)

	// Act
	system.Update(world, 0)

	// Assert
	if agent, _ := agentState(t, world, inLine); !agent.Visible {
		t.Errorf("agent level with the doorway should be visible")
	}
	if agent, _ := agentState(t, world, behindWall); agent.Visible {
		t.Errorf("agent behind the far wall should be hidden")
	}
}
