package systems

import (
	"fmt"
	"math/rand"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
)

const (
	// DefaultStepInterval is the time in seconds between agent steps
	DefaultStepInterval = 0.15

	// TargetDeviation is how far from the observer an agent's target may land
	TargetDeviation = 2
)

// AgentSystem moves agents toward the observer. Agents wake when the observer
// enters their region or one directly connected to it, and sleep again once
// it moves further away. An awake agent
// outside the observer's region asks for a route to a free tile around the
// observer and walks it one tile per step.
type AgentSystem struct {
	level     *level.Level
	occupancy *pathfind.OccupancyRegistry
	rng       *rand.Rand
	logFunc   func(string)

	// StepInterval is the time in seconds between agent steps
	StepInterval float64
	elapsed      float64

	observerTile pathfind.Point
}

// NewAgentSystem creates an agent system over lvl. Target claims go through
// occupancy so agents spread around the observer.
func NewAgentSystem(lvl *level.Level, occupancy *pathfind.OccupancyRegistry, rng *rand.Rand, logFunc func(string)) *AgentSystem {
	return &AgentSystem{
		level:        lvl,
		occupancy:    occupancy,
		rng:          rng,
		logFunc:      logFunc,
		StepInterval: DefaultStepInterval,
	}
}

// Initialize sets up event listeners for the agent system
func (s *AgentSystem) Initialize(world *ecs.World) ecs.Subscription {
	return world.GetEventManager().Subscribe(EventRegionChanged, func(event ecs.Event) {
		if e, ok := event.(RegionChangedEvent); ok {
			s.HandleRegionChanged(world, e)
		}
	})
}

// HandleRegionChanged wakes or puts to sleep every agent for the observer's
// new surroundings
func (s *AgentSystem) HandleRegionChanged(world *ecs.World, e RegionChangedEvent) {
	// Only the one-hop set wakes agents; the wider near set is for visibility
	adjacent := make(map[level.RegionRef]bool, len(e.Adjacent))
	for _, ref := range e.Adjacent {
		adjacent[ref] = true
	}

	for _, entity := range world.GetEntitiesWithTag(TagAgent) {
		agent, pos, ok := agentOf(world, entity.ID)
		if !ok {
			continue
		}

		ref, inRegion := s.level.RegionAt(pos.Tile())
		agent.Active = inRegion && adjacent[ref]
		agent.Pursue = agent.Active && ref != e.To

		if agent.Pursue || !agent.Active {
			// Pursuers re-route toward the observer's new position
			agent.Route = nil
			s.occupancy.Release(agent.ID)
		}
	}
}

// Update processes agent behaviour once every StepInterval seconds
func (s *AgentSystem) Update(world *ecs.World, dt float64) {
	observers := world.GetEntitiesWithTag(TagObserver)
	if len(observers) == 0 {
		return
	}
	comp, exists := world.GetComponent(observers[0].ID, components.Position)
	if !exists {
		return
	}
	s.observerTile = comp.(*components.PositionComponent).Tile()

	s.elapsed += dt
	if s.elapsed < s.StepInterval {
		return
	}
	s.elapsed = 0

	for _, entity := range world.GetEntitiesWithTag(TagAgent) {
		agent, pos, ok := agentOf(world, entity.ID)
		if !ok || !agent.Active {
			continue
		}

		if agent.Pursue && agent.Route == nil {
			s.requestRoute(world, entity.ID, agent, pos)
		}

		if agent.Route == nil {
			continue
		}
		if next, ok := agent.Route.Pop(); ok {
			pos.X, pos.Y = next.X, next.Y
		}
	}
}

// requestRoute asks for a route to a free tile around the observer
func (s *AgentSystem) requestRoute(world *ecs.World, id ecs.EntityID, agent *components.AgentComponent, pos *components.PositionComponent) {
	req := pathfind.TargetRequest{
		Agent:     agent.ID,
		From:      pos.Tile(),
		Base:      s.observerTile,
		Deviation: TargetDeviation,
		Walkable:  s.level.IsWalkable,
	}

	route, target, err := s.occupancy.RouteToTarget(s.rng, req, s.level.Tiles())
	if err != nil {
		// Try again on the next step
		s.log("WARN: agent %d has no route: %v", agent.ID, err)
		return
	}

	agent.Route = route
	agent.Target = target
	s.log("AGENT: agent %d routed %s", agent.ID, route)

	world.EmitEvent(AgentPathEvent{
		EntityID: id,
		Path:     route.Waypoints(),
		Target:   target,
	})
}

func (s *AgentSystem) log(format string, args ...any) {
	if s.logFunc != nil {
		s.logFunc(fmt.Sprintf(format, args...))
	}
}

// agentOf fetches the agent and position components of an entity
func agentOf(world *ecs.World, id ecs.EntityID) (*components.AgentComponent, *components.PositionComponent, bool) {
	agentComp, hasAgent := world.GetComponent(id, components.Agent)
	posComp, hasPos := world.GetComponent(id, components.Position)
	if !hasAgent || !hasPos {
		return nil, nil, false
	}
	return agentComp.(*components.AgentComponent), posComp.(*components.PositionComponent), true
}
