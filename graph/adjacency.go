package graph

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"ebiten-delve/generation"
)

// ErrUnknownRoom is returned when a corridor names a room that does not exist
var ErrUnknownRoom = errors.New("corridor references unknown room")

// AdjacencyGraph records which rooms are linked by which corridors.
// Rooms are nodes 0..R-1 and corridor i is node R+i, so a corridor sits
// between the two rooms it links.
type AdjacencyGraph struct {
	rooms     int
	links     [][2]int
	matrix    [][]bool
	roomEdges [][]int
	g         *simple.UndirectedGraph
}

// Build creates the graph for roomCount rooms joined by corridors
func Build(roomCount int, corridors []generation.Corridor) (*AdjacencyGraph, error) {
	a := &AdjacencyGraph{
		rooms:     roomCount,
		links:     make([][2]int, len(corridors)),
		matrix:    make([][]bool, roomCount),
		roomEdges: make([][]int, roomCount),
		g:         simple.NewUndirectedGraph(),
	}

	for i := 0; i < roomCount; i++ {
		a.matrix[i] = make([]bool, roomCount)
		a.g.AddNode(simple.Node(i))
	}

	for i, c := range corridors {
		left, right := c.Rooms()
		if !a.isRoom(left) || !a.isRoom(right) {
			return nil, fmt.Errorf("%w: corridor %d links %d and %d of %d rooms", ErrUnknownRoom, i, left, right, roomCount)
		}

		a.links[i] = [2]int{left, right}
		a.matrix[left][right] = true
		a.matrix[right][left] = true
		a.roomEdges[left] = append(a.roomEdges[left], i)
		if right != left {
			a.roomEdges[right] = append(a.roomEdges[right], i)
		}

		node := simple.Node(a.CorridorNode(i))
		a.g.SetEdge(simple.Edge{F: simple.Node(left), T: node})
		a.g.SetEdge(simple.Edge{F: node, T: simple.Node(right)})
	}

	return a, nil
}

func (a *AdjacencyGraph) isRoom(id int) bool {
	return id >= 0 && id < a.rooms
}

// RoomCount returns the number of rooms
func (a *AdjacencyGraph) RoomCount() int { return a.rooms }

// CorridorCount returns the number of corridors
func (a *AdjacencyGraph) CorridorCount() int { return len(a.links) }

// CorridorNode returns the node id of corridor i
func (a *AdjacencyGraph) CorridorNode(i int) int {
	return a.rooms + i
}

// Neighbors returns the rooms sharing a corridor with room, in room order
func (a *AdjacencyGraph) Neighbors(room int) []int {
	if !a.isRoom(room) {
		return nil
	}
	var out []int
	for other, linked := range a.matrix[room] {
		if linked {
			out = append(out, other)
		}
	}
	return out
}

// EdgesOf returns the corridors touching room, in corridor order
func (a *AdjacencyGraph) EdgesOf(room int) []int {
	if !a.isRoom(room) {
		return nil
	}
	return append([]int(nil), a.roomEdges[room]...)
}

// NodesOf returns the two rooms linked by corridor
func (a *AdjacencyGraph) NodesOf(corridor int) (int, int) {
	l := a.links[corridor]
	return l[0], l[1]
}

// AreAdjacent reports whether a single corridor links rooms r1 and r2
func (a *AdjacencyGraph) AreAdjacent(r1, r2 int) bool {
	if !a.isRoom(r1) || !a.isRoom(r2) {
		return false
	}
	return a.matrix[r1][r2]
}

// Connected reports whether room r2 can be reached from room r1 through any
// chain of corridors
func (a *AdjacencyGraph) Connected(r1, r2 int) bool {
	if !a.isRoom(r1) || !a.isRoom(r2) {
		return false
	}
	return topo.PathExistsIn(a.g, simple.Node(r1), simple.Node(r2))
}

// Components groups the rooms into sets reachable from each other. Each set
// is sorted and the sets are ordered by their smallest room.
func (a *AdjacencyGraph) Components() [][]int {
	var out [][]int
	for _, component := range topo.ConnectedComponents(a.g) {
		var rooms []int
		for _, n := range component {
			if id := int(n.ID()); a.isRoom(id) {
				rooms = append(rooms, id)
			}
		}
		if len(rooms) == 0 {
			continue
		}
		sort.Ints(rooms)
		out = append(out, rooms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
