package components

import (
	"ebiten-delve/ecs"
)

// Define component IDs for the simulation
const (
	Position ecs.ComponentID = iota
	Renderable
	Observer // Visibility source that drives region activation
	Agent    // Route-following entity that chases the observer
	Name     // Display name used in log messages
)
