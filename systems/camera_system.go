package systems

import (
	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// CameraSystem keeps a fixed-size viewport, in tiles, centred on the
// observer and clamped to the level
type CameraSystem struct {
	X, Y         int // Top-left tile of the viewport
	ViewW, ViewH int
	mapW, mapH   int
}

// NewCameraSystem creates a camera for a viewport over a map of the given size
func NewCameraSystem(viewW, viewH, mapW, mapH int) *CameraSystem {
	return &CameraSystem{ViewW: viewW, ViewH: viewH, mapW: mapW, mapH: mapH}
}

// Update updates the camera position to follow the observer
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	observers := world.GetEntitiesWithTag(TagObserver)
	if len(observers) == 0 {
		return
	}

	comp, exists := world.GetComponent(observers[0].ID, components.Position)
	if !exists {
		return
	}
	pos := comp.(*components.PositionComponent)

	oldX, oldY := s.X, s.Y
	s.X = clampView(pos.X-s.ViewW/2, s.mapW, s.ViewW)
	s.Y = clampView(pos.Y-s.ViewH/2, s.mapH, s.ViewH)

	// If the camera position changed, emit an event
	if oldX != s.X || oldY != s.Y {
		world.EmitEvent(CameraUpdateEvent{X: s.X, Y: s.Y})
	}
}

// clampView keeps a viewport of size view inside [0, size). A map smaller
// than the viewport pins the camera at 0.
func clampView(ideal, size, view int) int {
	if ideal > size-view {
		ideal = size - view
	}
	if ideal < 0 {
		ideal = 0
	}
	return ideal
}

// WorldToScreen converts world tile coordinates to viewport tile coordinates
func (s *CameraSystem) WorldToScreen(worldX, worldY int) (screenX, screenY int) {
	return worldX - s.X, worldY - s.Y
}

// InView reports whether a world tile falls inside the viewport
func (s *CameraSystem) InView(worldX, worldY int) bool {
	x, y := s.WorldToScreen(worldX, worldY)
	return x >= 0 && x < s.ViewW && y >= 0 && y < s.ViewH
}
