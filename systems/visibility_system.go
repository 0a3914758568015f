package systems

import (
	"fmt"
	"math/rand"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/level"
	"ebiten-delve/raycast"
)

// VisibilitySystem keeps the observer's visibility fan current. It tracks
// which region the observer stands in and, whenever that changes, rebuilds
// the wall geometry from the regions near it.
type VisibilitySystem struct {
	level   *level.Level
	rng     *rand.Rand
	logFunc func(string)

	current   level.RegionRef
	hasRegion bool
	near      []level.RegionRef

	corners []raycast.Vec2
	edges   []raycast.Edge
}

// NewVisibilitySystem creates a visibility system over lvl
func NewVisibilitySystem(lvl *level.Level, rng *rand.Rand, logFunc func(string)) *VisibilitySystem {
	return &VisibilitySystem{
		level:   lvl,
		rng:     rng,
		logFunc: logFunc,
	}
}

// Initialize subscribes the geometry rebuild to region changes
func (s *VisibilitySystem) Initialize(world *ecs.World) ecs.Subscription {
	return world.GetEventManager().Subscribe(EventRegionChanged, func(event ecs.Event) {
		if e, ok := event.(RegionChangedEvent); ok {
			s.rebuild(e.Near)
		}
	})
}

// Current returns the observer's region, false before the observer was first
// seen inside one
func (s *VisibilitySystem) Current() (level.RegionRef, bool) {
	return s.current, s.hasRegion
}

// Near returns the regions whose walls make up the visibility geometry
func (s *VisibilitySystem) Near() []level.RegionRef {
	return s.near
}

// Update processes the observer and flags which agents it can see
func (s *VisibilitySystem) Update(world *ecs.World, dt float64) {
	observers := world.GetEntitiesWithTag(TagObserver)
	if len(observers) == 0 {
		return
	}
	observerID := observers[0].ID

	posComp, hasPos := world.GetComponent(observerID, components.Position)
	obsComp, hasObs := world.GetComponent(observerID, components.Observer)
	if !hasPos || !hasObs {
		return
	}
	pos := posComp.(*components.PositionComponent)
	observer := obsComp.(*components.ObserverComponent)

	tile := pos.Tile()

	// Outside every region, such as on a doorway wall tile, the last region holds
	if ref, ok := s.level.RegionAt(tile); ok && (!s.hasRegion || ref != s.current) {
		event := RegionChangedEvent{
			EntityID: observerID,
			From:     s.current,
			HadFrom:  s.hasRegion,
			To:       ref,
			Adjacent: s.level.AdjacentRegions(tile),
			Near:     s.level.NearRegions(tile, s.rng),
		}
		s.current = ref
		s.hasRegion = true
		s.log("REGION: observer entered %s, %d regions near", ref, len(event.Near))
		world.EmitEvent(event)
	}

	observer.Source.Update(s.level.TileCenter(tile), s.corners, s.edges)

	for _, entity := range world.GetEntitiesWithTag(TagAgent) {
		agentComp, hasAgent := world.GetComponent(entity.ID, components.Agent)
		agentPos, hasPos := world.GetComponent(entity.ID, components.Position)
		if !hasAgent || !hasPos {
			continue
		}
		agent := agentComp.(*components.AgentComponent)
		at := agentPos.(*components.PositionComponent).Tile()
		agent.Visible = observer.Source.IsVisible(s.level.TileCenter(at))
	}
}

// rebuild swaps in the wall geometry of the given regions
func (s *VisibilitySystem) rebuild(near []level.RegionRef) {
	s.near = near
	s.corners, s.edges = s.level.VisibilityGeometry(near)
	s.log("DEBUG: visibility geometry has %d corners and %d edges", len(s.corners), len(s.edges))
}

func (s *VisibilitySystem) log(format string, args ...any) {
	if s.logFunc != nil {
		s.logFunc(fmt.Sprintf(format, args...))
	}
}
