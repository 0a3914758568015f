package components

import (
	"image/color"

	"ebiten-delve/pathfind"
	"ebiten-delve/raycast"
)

// PositionComponent stores an entity's tile position
type PositionComponent struct {
	X, Y int
}

// Tile returns the position as a pathfinding point
func (p *PositionComponent) Tile() pathfind.Point {
	return pathfind.Point{X: p.X, Y: p.Y}
}

// RenderableComponent stores how viewers draw an entity
type RenderableComponent struct {
	Glyph rune        // Terminal glyph
	Color color.Color // Fill colour in the window, foreground in the terminal
}

// NewRenderableComponent creates a new renderable component
func NewRenderableComponent(glyph rune, c color.Color) *RenderableComponent {
	return &RenderableComponent{
		Glyph: glyph,
		Color: c,
	}
}

// ObserverComponent marks the entity whose view decides what is visible and
// which agents are awake
type ObserverComponent struct {
	Source *raycast.RaySource
}

// NewObserverComponent creates an observer with an empty ray source
func NewObserverComponent() *ObserverComponent {
	return &ObserverComponent{
		Source: raycast.NewRaySource(),
	}
}

// AgentComponent stores the movement state of a chasing agent
type AgentComponent struct {
	ID      pathfind.AgentID
	Active  bool            // Agent is in a region near the observer
	Pursue  bool            // Agent should route towards the observer
	Route   *pathfind.Route // Remaining waypoints, nil when none was requested
	Target  pathfind.Point  // Final tile of the current route
	Visible bool            // Agent is inside the observer's visibility fan
}

// NewAgentComponent creates an idle agent
func NewAgentComponent(id pathfind.AgentID) *AgentComponent {
	return &AgentComponent{ID: id}
}

// PathNode represents a single point in a path
type PathNode struct {
	X, Y int
}
