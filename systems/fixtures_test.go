package systems

import (
	"testing"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/ecs"
	"ebiten-delve/generation"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
)

// roomChain builds a level of 6x6 rooms in a row, each joined to the next by
// a horizontal corridor. Room i spans columns 8i..8i+5.
func roomChain(t *testing.T, count int) *level.Level {
	t.Helper()
	res := &generation.Result{Tiles: components.NewTileGrid(8*count-2, 6)}
	for i := 0; i < count; i++ {
		region := generation.Rect{X: 8*i - 1, Width: 7, Height: 6}
		relX := 1
		if i == 0 {
			region = generation.Rect{Width: 7, Height: 6}
			relX = 0
		}
		res.Rooms = append(res.Rooms, generation.NewRoom(i, region, relX, 0, 6, 6))
		if i > 0 {
			res.Corridors = append(res.Corridors, generation.Corridor{
				Rect:      generation.Rect{X: 8*i - 3, Y: 1, Width: 4, Height: 4},
				LeftRoom:  i - 1,
				RightRoom: i,
				Direction: generation.Horizontal,
			})
		}
	}
	lvl, err := level.New(res, config.TileSize)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	return lvl
}

// spawnObserver adds a tagged observer entity at tile
func spawnObserver(world *ecs.World, tile pathfind.Point) ecs.EntityID {
	e := world.CreateEntity()
	world.TagEntity(e.ID, TagObserver)
	world.AddComponent(e.ID, components.Position, &components.PositionComponent{X: tile.X, Y: tile.Y})
	world.AddComponent(e.ID, components.Observer, components.NewObserverComponent())
	return e.ID
}

// spawnAgent adds a tagged agent entity at tile
func spawnAgent(world *ecs.World, id pathfind.AgentID, tile pathfind.Point) ecs.EntityID {
	e := world.CreateEntity()
	world.TagEntity(e.ID, TagAgent)
	world.AddComponent(e.ID, components.Position, &components.PositionComponent{X: tile.X, Y: tile.Y})
	world.AddComponent(e.ID, components.Agent, components.NewAgentComponent(id))
	return e.ID
}

func agentState(t *testing.T, world *ecs.World, id ecs.EntityID) (*components.AgentComponent, *components.PositionComponent) {
	t.Helper()
	agent, pos, ok := agentOf(world, id)
	if !ok {
		t.Fatalf("entity %d is not an agent", id)
	}
	return agent, pos
}
