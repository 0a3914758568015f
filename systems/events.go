package systems

import (
	"ebiten-delve/ecs"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
)

// Event type constants
const (
	EventMovement      ecs.EventType = "movement"
	EventRegionChanged ecs.EventType = "region_changed"
	EventAgentPath     ecs.EventType = "agent_path"
	EventCameraUpdate  ecs.EventType = "camera_update"
)

// ObserverMoveEvent is emitted when the observer steps to a new tile
type ObserverMoveEvent struct {
	EntityID ecs.EntityID // Entity that moved
	FromX    int          // Starting X position
	FromY    int          // Starting Y position
	ToX      int          // Ending X position
	ToY      int          // Ending Y position
}

// Type returns the event type
func (e ObserverMoveEvent) Type() ecs.EventType {
	return EventMovement
}

// RegionChangedEvent is emitted when the observer enters a different room or
// corridor, and once for its starting region
type RegionChangedEvent struct {
	EntityID ecs.EntityID
	From     level.RegionRef
	HadFrom  bool // False on the first update
	To       level.RegionRef
	Adjacent []level.RegionRef // To and the regions directly connected to it
	Near     []level.RegionRef // Adjacent regions plus one more hop, for visibility
}

// Type returns the event type
func (e RegionChangedEvent) Type() ecs.EventType {
	return EventRegionChanged
}

// AgentPathEvent is emitted when an agent has been given a new route
type AgentPathEvent struct {
	EntityID ecs.EntityID     // The agent entity
	Path     []pathfind.Point // The route in walking order
	Target   pathfind.Point   // Final tile of the route
}

// Type returns the event type
func (e AgentPathEvent) Type() ecs.EventType {
	return EventAgentPath
}

// CameraUpdateEvent is emitted when the camera scrolls
type CameraUpdateEvent struct {
	X, Y int // New top-left tile of the viewport
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
