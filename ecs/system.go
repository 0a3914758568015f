package ecs

// System processes the entities of a world once per tick
type System interface {
	// Update is called each tick with the time elapsed since the last one
	Update(world *World, dt float64)
}
