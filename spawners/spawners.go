package spawners

import (
	"fmt"
	"image/color"
	"math/rand"

	"ebiten-delve/components"
	"ebiten-delve/data"
	"ebiten-delve/ecs"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
	"ebiten-delve/systems"
)

// TagExit marks the level's exit entity
const TagExit = "exit"

// EntitySpawner manages the creation of level entities
type EntitySpawner struct {
	world      *ecs.World
	table      *SpawnTable
	logMessage func(string) // Function for logging messages
	nextAgent  pathfind.AgentID
}

// NewEntitySpawner creates a new entity spawner. Agents are dressed from
// templates by spawn weight.
func NewEntitySpawner(world *ecs.World, templates *data.AgentTemplateManager, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		table:      NewSpawnTable(templates),
		logMessage: logFunc,
	}
}

func (s *EntitySpawner) log(format string, args ...any) {
	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf(format, args...))
	}
}

// CreateObserver creates the observer entity at the given tile
func (s *EntitySpawner) CreateObserver(tile pathfind.Point) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, systems.TagObserver)

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{X: tile.X, Y: tile.Y})
	s.world.AddComponent(entity.ID, components.Observer, components.NewObserverComponent())
	s.world.AddComponent(entity.ID, components.Renderable, components.NewRenderableComponent('@', color.RGBA{255, 255, 255, 255}))
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent("observer"))

	s.log("DEBUG: observer created at %d,%d", tile.X, tile.Y)
	return entity
}

// CreateExit creates the exit marker at the given tile
func (s *EntitySpawner) CreateExit(tile pathfind.Point) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, TagExit)

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{X: tile.X, Y: tile.Y})
	s.world.AddComponent(entity.ID, components.Renderable, components.NewRenderableComponent('>', color.RGBA{255, 230, 150, 255}))
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent("exit"))
	return entity
}

// CreateAgent creates an agent at the given tile. A nil template gives a
// plain red agent.
func (s *EntitySpawner) CreateAgent(tile pathfind.Point, template *data.AgentTemplate) *ecs.Entity {
	s.nextAgent++
	id := s.nextAgent

	glyph, clr, name := 'a', color.RGBA{200, 0, 0, 255}, components.AgentName(int(id))
	if template != nil {
		glyph, clr = template.Rune(), template.RGBA()
		name = template.Name + " " + name
	}

	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, systems.TagAgent)

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{X: tile.X, Y: tile.Y})
	s.world.AddComponent(entity.ID, components.Agent, components.NewAgentComponent(id))
	s.world.AddComponent(entity.ID, components.Renderable, components.NewRenderableComponent(glyph, clr))
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent(name))
	return entity
}

// Populate creates the observer, the exit and every planned agent. It returns
// the observer.
func (s *EntitySpawner) Populate(spawns level.Spawns, rng *rand.Rand) *ecs.Entity {
	observer := s.CreateObserver(spawns.Player)
	s.CreateExit(spawns.Exit)
	for _, tile := range spawns.Agents {
		s.CreateAgent(tile, s.table.Pick(rng))
	}
	s.log("DEBUG: spawned %d agents", len(spawns.Agents))
	return observer
}
