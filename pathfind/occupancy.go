package pathfind

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoTarget is returned when no free tile could be found around a target
var ErrNoTarget = errors.New("no free target tile")

// AgentID identifies an agent claiming tiles in an OccupancyRegistry
type AgentID uint64

// OccupancyRegistry records which tile each agent is heading for, so agents
// converging on the same target spread out instead of stacking. It is owned
// by the simulation driver and passed to whoever selects targets.
type OccupancyRegistry struct {
	claims map[AgentID]Point
}

// NewOccupancyRegistry creates an empty registry
func NewOccupancyRegistry() *OccupancyRegistry {
	return &OccupancyRegistry{
		claims: make(map[AgentID]Point),
	}
}

// Claim records tile as the destination of agent, replacing any earlier claim
func (o *OccupancyRegistry) Claim(agent AgentID, tile Point) {
	o.claims[agent] = tile
}

// Release drops the claim held by agent
func (o *OccupancyRegistry) Release(agent AgentID) {
	delete(o.claims, agent)
}

// Claimed returns the tile agent has claimed
func (o *OccupancyRegistry) Claimed(agent AgentID) (Point, bool) {
	p, ok := o.claims[agent]
	return p, ok
}

// IsOccupied reports whether some other agent has claimed tile.
// An agent's own claim never blocks it.
func (o *OccupancyRegistry) IsOccupied(agent AgentID, tile Point) bool {
	for id, claimed := range o.claims {
		if claimed == tile && id != agent {
			return true
		}
	}
	return false
}

// Len returns the number of active claims
func (o *OccupancyRegistry) Len() int {
	return len(o.claims)
}

// TargetRequest describes a target search around a base tile
type TargetRequest struct {
	Agent     AgentID
	From      Point
	Base      Point
	Deviation int
	// Walkable reports whether a candidate tile lies inside a room or corridor
	Walkable    func(Point) bool
	MaxAttempts int
}

// SelectTarget picks a random tile within Deviation of Base that is walkable
// and not claimed by another agent, and claims it for the requesting agent.
func (o *OccupancyRegistry) SelectTarget(rng *rand.Rand, req TargetRequest) (Point, error) {
	attempts := req.MaxAttempts
	if attempts <= 0 {
		attempts = 100
	}

	span := 2*req.Deviation + 1
	for i := 0; i < attempts; i++ {
		candidate := Point{
			X: req.Base.X + rng.Intn(span) - req.Deviation,
			Y: req.Base.Y + rng.Intn(span) - req.Deviation,
		}
		if o.IsOccupied(req.Agent, candidate) {
			continue
		}
		if req.Walkable != nil && !req.Walkable(candidate) {
			continue
		}
		o.Claim(req.Agent, candidate)
		return candidate, nil
	}

	return Point{}, fmt.Errorf("%w around (%d,%d) after %d attempts", ErrNoTarget, req.Base.X, req.Base.Y, attempts)
}

// RouteToTarget selects targets around req.Base until one is reachable from
// req.From over grid and returns the route to it. The chosen tile stays
// claimed by the agent.
func (o *OccupancyRegistry) RouteToTarget(rng *rand.Rand, req TargetRequest, grid Grid) (*Route, Point, error) {
	attempts := req.MaxAttempts
	if attempts <= 0 {
		attempts = 100
	}

	for i := 0; i < attempts; i++ {
		target, err := o.SelectTarget(rng, req)
		if err != nil {
			return nil, Point{}, err
		}

		route, err := FindPath(req.From, target, grid)
		if err == nil {
			return route, target, nil
		}
		if !errors.Is(err, ErrNoPathFound) {
			return nil, Point{}, err
		}
	}

	o.Release(req.Agent)
	return nil, Point{}, fmt.Errorf("%w: no reachable tile around (%d,%d)", ErrNoPathFound, req.Base.X, req.Base.Y)
}
