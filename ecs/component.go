package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is any per-entity data a system reads or writes
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component
