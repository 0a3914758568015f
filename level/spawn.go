package level

import (
	"math"
	"math/rand"

	"ebiten-delve/pathfind"
)

// Spawns holds the starting tiles for one level
type Spawns struct {
	Player pathfind.Point
	Exit   pathfind.Point
	Agents []pathfind.Point
}

// PlanSpawns puts the player in the middle of a random room, the exit on a
// random floor tile, and a difficulty-scaled number of agents in every room.
// Agent tiles are unique within their room.
func (l *Level) PlanSpawns(rng *rand.Rand, difficulty float64) Spawns {
	var s Spawns
	if len(l.rooms) == 0 {
		return s
	}

	start := l.rooms[rng.Intn(len(l.rooms))]
	s.Player = pathfind.Point{
		X: start.X() + (start.Width()-1)/2,
		Y: start.Y() + (start.Height()-1)/2,
	}
	s.Exit = l.RandomFloor(rng, Room(rng.Intn(len(l.rooms))))

	for i, room := range l.rooms {
		area := (room.Width() - 2) * (room.Height() - 2)
		limit := 0
		if difficulty > 0 {
			limit = int(math.Floor(float64(area) / 100 * difficulty * 2))
		}
		count := min(rng.Intn(limit+1), area)

		taken := make(map[pathfind.Point]bool, count)
		for len(taken) < count {
			p := l.RandomFloor(rng, Room(i))
			if taken[p] {
				continue
			}
			taken[p] = true
			s.Agents = append(s.Agents, p)
		}
	}

	return s
}
