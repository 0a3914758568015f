package level

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/generation"
	"ebiten-delve/graph"
	"ebiten-delve/pathfind"
	"ebiten-delve/raycast"
)

// RegionKind tells rooms and corridors apart
type RegionKind int

const (
	RoomRegion RegionKind = iota
	CorridorRegion
)

// RegionRef names one room or corridor of a level
type RegionRef struct {
	Kind  RegionKind
	Index int
}

func (r RegionRef) String() string {
	if r.Kind == CorridorRegion {
		return fmt.Sprintf("corridor %d", r.Index)
	}
	return fmt.Sprintf("room %d", r.Index)
}

// Room returns a reference to room i
func Room(i int) RegionRef { return RegionRef{Kind: RoomRegion, Index: i} }

// Corridor returns a reference to corridor i
func Corridor(i int) RegionRef { return RegionRef{Kind: CorridorRegion, Index: i} }

// Level is a generated layout ready for play: corridors widened so they reach
// into their rooms, plus the room adjacency and tile/pixel queries
type Level struct {
	tiles     *components.TileGrid
	rooms     []generation.Room
	corridors []generation.Corridor
	graph     *graph.AdjacencyGraph
	tileSize  int
}

// New wraps a generator result. The result's corridors are copied before
// widening so the result itself is left untouched.
func New(res *generation.Result, tileSize int) (*Level, error) {
	if tileSize <= 0 {
		tileSize = config.TileSize
	}

	corridors := append([]generation.Corridor(nil), res.Corridors...)
	generation.WidenCorridors(corridors, config.CorridorMargin)

	adjacency, err := graph.Build(len(res.Rooms), corridors)
	if err != nil {
		return nil, fmt.Errorf("failed to build adjacency: %w", err)
	}

	return &Level{
		tiles:     res.Tiles,
		rooms:     res.Rooms,
		corridors: corridors,
		graph:     adjacency,
		tileSize:  tileSize,
	}, nil
}

// Tiles returns the level's tile grid
func (l *Level) Tiles() *components.TileGrid { return l.tiles }

// Rooms returns every room
func (l *Level) Rooms() []generation.Room { return l.rooms }

// Corridors returns every corridor, widened
func (l *Level) Corridors() []generation.Corridor { return l.corridors }

// Graph returns the room adjacency graph
func (l *Level) Graph() *graph.AdjacencyGraph { return l.graph }

// TileSize returns the pixel size of one tile
func (l *Level) TileSize() int { return l.tileSize }

// Bounds returns the tile rect of a room or corridor
func (l *Level) Bounds(ref RegionRef) generation.Rect {
	if ref.Kind == CorridorRegion {
		return l.corridors[ref.Index].Rect
	}
	return l.rooms[ref.Index].Bounds()
}

// RoomAt returns the room whose interior holds tile
func (l *Level) RoomAt(tile pathfind.Point) (int, bool) {
	for i, room := range l.rooms {
		if room.Bounds().Interior(tile.X, tile.Y) {
			return i, true
		}
	}
	return -1, false
}

// CorridorAt returns the corridor whose interior holds tile
func (l *Level) CorridorAt(tile pathfind.Point) (int, bool) {
	for i, c := range l.corridors {
		if c.Interior(tile.X, tile.Y) {
			return i, true
		}
	}
	return -1, false
}

// RegionAt returns the room holding tile, or else the corridor holding it
func (l *Level) RegionAt(tile pathfind.Point) (RegionRef, bool) {
	if i, ok := l.RoomAt(tile); ok {
		return Room(i), true
	}
	if i, ok := l.CorridorAt(tile); ok {
		return Corridor(i), true
	}
	return RegionRef{}, false
}

// IsWalkable reports whether tile lies inside any room or corridor
func (l *Level) IsWalkable(tile pathfind.Point) bool {
	_, ok := l.RegionAt(tile)
	return ok
}

// ConnectedRegions returns the corridors leaving a room, or the two rooms at
// the ends of a corridor
func (l *Level) ConnectedRegions(ref RegionRef) []RegionRef {
	if ref.Kind == CorridorRegion {
		left, right := l.graph.NodesOf(ref.Index)
		return []RegionRef{Room(right), Room(left)}
	}

	edges := l.graph.EdgesOf(ref.Index)
	out := make([]RegionRef, 0, len(edges))
	for _, c := range edges {
		out = append(out, Corridor(c))
	}
	return out
}

// AdjacentRegions returns the region holding tile and its connected regions
func (l *Level) AdjacentRegions(tile pathfind.Point) []RegionRef {
	return sortRefs(l.adjacent(tile))
}

func (l *Level) adjacent(tile pathfind.Point) mapset.Set[RegionRef] {
	set := mapset.New[RegionRef]()
	current, ok := l.RegionAt(tile)
	if !ok {
		return set
	}
	set.Put(current)
	for _, ref := range l.ConnectedRegions(current) {
		set.Put(ref)
	}
	return set
}

// NearRegions returns the adjacent regions of tile and the regions connected
// to those. The second hop is found from a random floor tile of each
// adjacent region.
func (l *Level) NearRegions(tile pathfind.Point, rng *rand.Rand) []RegionRef {
	near := l.adjacent(tile)
	if near.Size() == 0 {
		return nil
	}

	firstHop := sortRefs(near)
	for _, ref := range firstHop {
		sample := l.RandomFloor(rng, ref)
		at, ok := l.RegionAt(sample)
		if !ok {
			continue
		}
		for _, next := range l.ConnectedRegions(at) {
			near.Put(next)
		}
	}

	return sortRefs(near)
}

func sortRefs(set mapset.Set[RegionRef]) []RegionRef {
	refs := make([]RegionRef, 0, set.Size())
	set.Each(func(ref RegionRef) {
		refs = append(refs, ref)
	})
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Kind != refs[j].Kind {
			return refs[i].Kind < refs[j].Kind
		}
		return refs[i].Index < refs[j].Index
	})
	return refs
}

// RandomFloor returns a random tile inside the walls of a room or corridor
func (l *Level) RandomFloor(rng *rand.Rand, ref RegionRef) pathfind.Point {
	r := l.Bounds(ref)
	return pathfind.Point{
		X: r.X + 1 + rng.Intn(max(1, r.Width-2)),
		Y: r.Y + 1 + rng.Intn(max(1, r.Height-2)),
	}
}

// Corners returns the pixel corners of a region's floor, clockwise from the
// top left
func (l *Level) Corners(ref RegionRef) []raycast.Vec2 {
	r := l.Bounds(ref)
	ts := float64(l.tileSize)
	tileCorners := [4][2]int{
		{r.X + 1, r.Y + 1},
		{r.EndX(), r.Y + 1},
		{r.EndX(), r.EndY()},
		{r.X + 1, r.EndY()},
	}

	corners := make([]raycast.Vec2, 0, len(tileCorners))
	for _, c := range tileCorners {
		corners = append(corners, raycast.Vec2{X: float64(c[0]) * ts, Y: float64(c[1]) * ts})
	}
	return corners
}

// EdgesFromCorners joins consecutive corners into edges, closing the loop
// from the last corner back to the first
func EdgesFromCorners(corners []raycast.Vec2) []raycast.Edge {
	edges := make([]raycast.Edge, 0, len(corners))
	for i := range corners {
		prev := corners[(i+len(corners)-1)%len(corners)]
		edges = append(edges, raycast.NewEdge(prev, corners[i]))
	}
	return edges
}

// VisibilityGeometry collects the corners and outline edges of the given
// regions, with overlapping outlines split so doorways stay open
func (l *Level) VisibilityGeometry(refs []RegionRef) ([]raycast.Vec2, []raycast.Edge) {
	var corners []raycast.Vec2
	var edges []raycast.Edge
	for _, ref := range refs {
		c := l.Corners(ref)
		corners = append(corners, c...)
		edges = append(edges, EdgesFromCorners(c)...)
	}
	return corners, raycast.SeparateEdges(edges)
}

// TileAt returns the tile holding a pixel position
func (l *Level) TileAt(p raycast.Vec2) pathfind.Point {
	ts := float64(l.tileSize)
	return pathfind.Point{X: int(math.Floor(p.X / ts)), Y: int(math.Floor(p.Y / ts))}
}

// TileCenter returns the pixel position at the middle of a tile
func (l *Level) TileCenter(tile pathfind.Point) raycast.Vec2 {
	ts := float64(l.tileSize)
	return raycast.Vec2{X: float64(tile.X)*ts + ts/2, Y: float64(tile.Y)*ts + ts/2}
}
