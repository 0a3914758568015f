// Package sim wires a generated level, its entities and the runtime systems
// into one steppable session shared by the viewers.
package sim

import (
	"fmt"
	"math/rand"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/data"
	"ebiten-delve/ecs"
	"ebiten-delve/generation"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
	"ebiten-delve/raycast"
	"ebiten-delve/spawners"
	"ebiten-delve/systems"
)

// DefaultDifficulty scales how many agents each room receives
const DefaultDifficulty = 1.0

// Options configures a new session
type Options struct {
	Level      config.LevelConfig
	Seed       int64
	Difficulty float64
	// Templates dresses agents; nil uses the built-in kinds
	Templates *data.AgentTemplateManager
	LogFunc   func(string)
}

// Session is one generated level with its observer and agents
type Session struct {
	Seed   int64
	Result *generation.Result
	Level  *level.Level
	World  *ecs.World
	Spawns level.Spawns

	Observer ecs.EntityID

	Movement   *systems.MovementSystem
	Visibility *systems.VisibilitySystem
	Agents     *systems.AgentSystem
	Camera     *systems.CameraSystem
	Occupancy  *pathfind.OccupancyRegistry

	logFunc func(string)
}

// NewSession generates a level and populates it
func NewSession(opts Options) (*Session, error) {
	gen, err := generation.NewLevelGenerator(opts.Level)
	if err != nil {
		return nil, err
	}
	gen.SetSeed(opts.Seed)
	gen.SetLogFunc(opts.LogFunc)

	res, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("seed %d: %w", opts.Seed, err)
	}

	lvl, err := level.New(res, config.TileSize)
	if err != nil {
		return nil, fmt.Errorf("seed %d: %w", opts.Seed, err)
	}

	templates := opts.Templates
	if templates == nil {
		templates = data.DefaultTemplates()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	world := ecs.NewWorld()
	spawns := lvl.PlanSpawns(rng, opts.Difficulty)
	observer := spawners.NewEntitySpawner(world, templates, opts.LogFunc).Populate(spawns, rng)

	s := &Session{
		Seed:       opts.Seed,
		Result:     res,
		Level:      lvl,
		World:      world,
		Spawns:     spawns,
		Observer:   observer.ID,
		Movement:   systems.NewMovementSystem(lvl.Tiles()),
		Visibility: systems.NewVisibilitySystem(lvl, rng, opts.LogFunc),
		Camera:     systems.NewCameraSystem(config.ScreenWidth, config.ScreenHeight, opts.Level.Columns, opts.Level.Rows),
		Occupancy:  pathfind.NewOccupancyRegistry(),
		logFunc:    opts.LogFunc,
	}
	s.Agents = systems.NewAgentSystem(lvl, s.Occupancy, rng, opts.LogFunc)

	s.Visibility.Initialize(world)
	s.Agents.Initialize(world)

	// Register systems in the order they run each tick
	world.AddSystem(s.Movement)
	world.AddSystem(s.Visibility)
	world.AddSystem(s.Agents)
	world.AddSystem(s.Camera)

	if s.logFunc != nil {
		s.logFunc(fmt.Sprintf("INFO: seed %d gave %d rooms, %d corridors and %d agents",
			opts.Seed, len(res.Rooms), len(res.Corridors), len(spawns.Agents)))
	}

	// Settle the first region and view before anything is drawn
	world.Update(0)
	return s, nil
}

// Step advances every system by dt seconds
func (s *Session) Step(dt float64) {
	s.World.Update(dt)
}

// Move queues an observer step for the next tick
func (s *Session) Move(dir int) {
	s.Movement.Queue(dir)
}

// ObserverTile returns the observer's current tile
func (s *Session) ObserverTile() pathfind.Point {
	comp, ok := s.World.GetComponent(s.Observer, components.Position)
	if !ok {
		return pathfind.Point{}
	}
	return comp.(*components.PositionComponent).Tile()
}

// View returns the observer's ray source
func (s *Session) View() *raycast.RaySource {
	comp, ok := s.World.GetComponent(s.Observer, components.Observer)
	if !ok {
		return nil
	}
	return comp.(*components.ObserverComponent).Source
}

// AtExit reports whether the observer stands on the exit tile
func (s *Session) AtExit() bool {
	return s.ObserverTile() == s.Spawns.Exit
}
