package pathfind

import (
	"errors"
	"sync"
	"testing"
)

// stringGrid is a test grid where '#' marks a wall
type stringGrid []string

func (g stringGrid) IsWall(x, y int) bool {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return true
	}
	return g[y][x] == '#'
}

// bfsDistance returns the true shortest step count between two tiles, or -1
func bfsDistance(g stringGrid, start, end Point) int {
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == end {
			return dist[p]
		}
		for _, o := range neighborOffsets {
			n := Point{X: p.X + o.X, Y: p.Y + o.Y}
			if g.IsWall(n.X, n.Y) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[p] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func assertContiguous(t *testing.T, g stringGrid, start Point, waypoints []Point) {
	t.Helper()
	prev := start
	for i, p := range waypoints {
		if ManhattanDistance(prev, p) != 1 {
			t.Fatalf("waypoint %d %v is not adjacent to %v", i, p, prev)
		}
		if g.IsWall(p.X, p.Y) {
			t.Fatalf("waypoint %d %v is a wall", i, p)
		}
		prev = p
	}
}

func TestFindPath_OpenGridIsManhattanOptimal(t *testing.T) {
	// Arrange
	grid := stringGrid{
		".....",
		".....",
		".....",
		".....",
		".....",
	}
	start, end := Point{X: 0, Y: 0}, Point{X: 4, Y: 4}

	// Act
	route, err := FindPath(start, end, grid)

	// Assert
	if err != nil {
		t.Fatalf("FindPath returned error: %v", err)
	}
	if route.Len() != ManhattanDistance(start, end) {
		t.Fatalf("expected %d steps, got %d", ManhattanDistance(start, end), route.Len())
	}
	// Start plus every step covers Manhattan distance + 1 tiles
	if tiles := route.Len() + 1; tiles != 9 {
		t.Errorf("expected 9 tiles including the start, got %d", tiles)
	}
	waypoints := route.Waypoints()
	assertContiguous(t, grid, start, waypoints)
	if waypoints[len(waypoints)-1] != end {
		t.Errorf("route ends at %v, want %v", waypoints[len(waypoints)-1], end)
	}
}

func TestFindPath_EnclosedTargetHasNoPath(t *testing.T) {
	grid := stringGrid{
		".......",
		"..###..",
		"..#.#..",
		"..###..",
		".......",
	}

	route, err := FindPath(Point{X: 0, Y: 0}, Point{X: 3, Y: 2}, grid)

	if !errors.Is(err, ErrNoPathFound) {
		t.Fatalf("expected ErrNoPathFound, got route=%v err=%v", route, err)
	}
	if route != nil {
		t.Errorf("expected nil route on failure")
	}
}

func TestFindPath_StartIsTarget(t *testing.T) {
	grid := stringGrid{"..."}

	route, err := FindPath(Point{X: 1, Y: 0}, Point{X: 1, Y: 0}, grid)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Len() != 0 {
		t.Errorf("expected empty route, got %d waypoints", route.Len())
	}
}

// On these grids a square is first opened through a detour and later reached
// more cheaply while still open. Without re-parenting the route comes out two
// steps longer than the shortest one.
func TestFindPath_ReparentedSquaresKeepShortestRoute(t *testing.T) {
	tests := []struct {
		name       string
		grid       stringGrid
		start, end Point
		want       int
	}{
		{
			name: "stacked walls",
			grid: stringGrid{
				"....",
				".#.#",
				"....",
				".###",
				"....",
			},
			start: Point{X: 1, Y: 0},
			end:   Point{X: 3, Y: 4},
			want:  8,
		},
		{
			name: "notched room",
			grid: stringGrid{
				"..##...",
				"..#..#.",
				".......",
			},
			start: Point{X: 6, Y: 1},
			end:   Point{X: 0, Y: 0},
			want:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := newSearch(tt.end)

			// Act
			route, err := s.run(tt.start, tt.grid)

			// Assert
			if err != nil {
				t.Fatalf("FindPath returned error: %v", err)
			}
			if s.reparents == 0 {
				t.Fatalf("expected at least one open square to be re-parented")
			}
			if got := bfsDistance(tt.grid, tt.start, tt.end); got != tt.want {
				t.Fatalf("test grid shortest route is %d, want %d", got, tt.want)
			}
			if route.Len() != tt.want {
				t.Errorf("route has %d steps, shortest is %d", route.Len(), tt.want)
			}
			assertContiguous(t, tt.grid, tt.start, route.Waypoints())
		})
	}
}

func TestFindPath_MatchesBreadthFirstAroundWalls(t *testing.T) {
	tests := []struct {
		name       string
		grid       stringGrid
		start, end Point
	}{
		{
			name: "detour around wall",
			grid: stringGrid{
				"..........",
				".########.",
				".#......#.",
				".#.####.#.",
				"...#..#...",
				"####..####",
			},
			start: Point{X: 0, Y: 4},
			end:   Point{X: 9, Y: 4},
		},
		{
			name: "spiral",
			grid: stringGrid{
				"#########",
				"#.......#",
				"#.#####.#",
				"#.#...#.#",
				"#.#.#.#.#",
				"#.#.#...#",
				"#.#.#####",
				"#...#...#",
				"#########",
			},
			start: Point{X: 1, Y: 1},
			end:   Point{X: 3, Y: 3},
		},
		{
			name: "room with pillars",
			grid: stringGrid{
				"...........",
				".#.#.#.#.#.",
				"...........",
				".#.#.#.#.#.",
				"...........",
			},
			start: Point{X: 0, Y: 2},
			end:   Point{X: 10, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := bfsDistance(tt.grid, tt.start, tt.end)
			if want < 0 {
				t.Fatalf("test grid has no path")
			}

			route, err := FindPath(tt.start, tt.end, tt.grid)
			if err != nil {
				t.Fatalf("FindPath returned error: %v", err)
			}
			if route.Len() != want {
				t.Errorf("route has %d steps, shortest is %d", route.Len(), want)
			}
			assertContiguous(t, tt.grid, tt.start, route.Waypoints())
		})
	}
}

func TestFindPath_RouteIsPoppedFromStartSide(t *testing.T) {
	grid := stringGrid{"....."}

	route, err := FindPath(Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, grid)
	if err != nil {
		t.Fatalf("FindPath returned error: %v", err)
	}

	for want := 1; want <= 4; want++ {
		p, ok := route.Pop()
		if !ok {
			t.Fatalf("route empty after %d pops", want-1)
		}
		if p.X != want {
			t.Errorf("pop %d returned x=%d, want %d", want, p.X, want)
		}
	}
	if _, ok := route.Pop(); ok {
		t.Errorf("expected route to be exhausted")
	}
}

func TestFindPath_IndependentConcurrentSearches(t *testing.T) {
	grid := stringGrid{
		"..........",
		".########.",
		"..........",
		".########.",
		"..........",
	}
	want := bfsDistance(grid, Point{X: 0, Y: 0}, Point{X: 9, Y: 4})

	var wg sync.WaitGroup
	lengths := make([]int, 16)
	for i := range lengths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			route, err := FindPath(Point{X: 0, Y: 0}, Point{X: 9, Y: 4}, grid)
			if err != nil {
				lengths[i] = -1
				return
			}
			lengths[i] = route.Len()
		}(i)
	}
	wg.Wait()

	for i, got := range lengths {
		if got != want {
			t.Errorf("search %d returned %d steps, want %d", i, got, want)
		}
	}
}

func TestRoute_PushPeekTarget(t *testing.T) {
	route := NewRoute([]Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}})

	if p, _ := route.Peek(); p != (Point{X: 1, Y: 0}) {
		t.Errorf("peek returned %v", p)
	}
	if p, _ := route.Target(); p != (Point{X: 3, Y: 0}) {
		t.Errorf("target returned %v", p)
	}

	route.Pop()
	route.Push(Point{X: 0, Y: 0})
	if p, _ := route.Peek(); p != (Point{X: 0, Y: 0}) {
		t.Errorf("peek after push returned %v", p)
	}
	if route.Len() != 3 {
		t.Errorf("expected 3 waypoints, got %d", route.Len())
	}
}
