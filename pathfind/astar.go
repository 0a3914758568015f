package pathfind

import (
	"container/heap"
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoPathFound is returned when the target cannot be reached from the start.
// It is an expected outcome: callers pick a new target or stop moving.
var ErrNoPathFound = errors.New("no path found")

// Point represents a 2D tile coordinate
type Point struct {
	X, Y int
}

// Grid is the walkability view the pathfinder searches over
type Grid interface {
	IsWall(x, y int) bool
}

// searchNode is one square of an A* search. Nodes live in the search's arena
// and refer to their parent by index; the root has parent -1.
type searchNode struct {
	pos    Point
	g, h   int
	f      int
	parent int
}

// neighborOffsets are the N/E/S/W moves, in the order squares are expanded
var neighborOffsets = [4]Point{
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
}

// FindPath uses A* to find the shortest 4-directional route from start to end.
// The returned route holds every tile after start up to and including end.
func FindPath(start, end Point, grid Grid) (*Route, error) {
	return newSearch(end).run(start, grid)
}

func newSearch(target Point) *search {
	s := &search{
		target: target,
		open:   make(PriorityQueue, 0),
		inOpen: make(map[Point]*Item),
		closed: mapset.New[Point](),
	}
	heap.Init(&s.open)
	return s
}

func (s *search) run(start Point, grid Grid) (*Route, error) {
	end := s.target
	root := s.addNode(start, 0, -1)
	s.push(root)

	for s.open.Len() > 0 {
		// Grab the square with the lowest f score and close it
		item := heap.Pop(&s.open).(*Item)
		current := item.node
		pos := s.nodes[current].pos
		delete(s.inOpen, pos)
		s.closed.Put(pos)

		if pos == end {
			return s.route(current), nil
		}

		for _, offset := range neighborOffsets {
			next := Point{X: pos.X + offset.X, Y: pos.Y + offset.Y}
			if grid.IsWall(next.X, next.Y) {
				continue
			}
			// Already expanded
			if s.closed.Has(next) {
				continue
			}

			g := s.nodes[current].g + 1
			if existing, ok := s.inOpen[next]; ok {
				// A cheaper way into an open square re-parents it and refreshes its scores
				n := &s.nodes[existing.node]
				if g < n.g {
					n.parent = current
					n.g = g
					n.f = n.g + n.h
					existing.priority = n.f
					heap.Fix(&s.open, existing.index)
					s.reparents++
				}
				continue
			}

			s.push(s.addNode(next, g, current))
		}
	}

	return nil, ErrNoPathFound
}

// ManhattanDistance estimates the cost between two tiles on a 4-connected grid
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

type search struct {
	target Point
	nodes  []searchNode
	open   PriorityQueue
	inOpen map[Point]*Item
	closed mapset.Set[Point]
	seq    int

	// reparents counts open squares given a cheaper parent
	reparents int
}

func (s *search) addNode(pos Point, g, parent int) int {
	h := ManhattanDistance(pos, s.target)
	s.nodes = append(s.nodes, searchNode{
		pos:    pos,
		g:      g,
		h:      h,
		f:      g + h,
		parent: parent,
	})
	return len(s.nodes) - 1
}

func (s *search) push(node int) {
	item := &Item{
		node:     node,
		priority: s.nodes[node].f,
		seq:      s.seq,
	}
	s.seq++
	heap.Push(&s.open, item)
	s.inOpen[s.nodes[node].pos] = item
}

// route walks parent links back from the last closed square, stopping before the root
func (s *search) route(last int) *Route {
	waypoints := make([]Point, 0, s.nodes[last].g)
	for i := last; s.nodes[i].parent != -1; i = s.nodes[i].parent {
		waypoints = append(waypoints, s.nodes[i].pos)
	}
	return NewRoute(waypoints)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Item is an open square waiting in the priority queue
type Item struct {
	node     int
	priority int
	seq      int
	index    int
}

// PriorityQueue orders open squares by f score. Equal scores keep the order
// they were discovered in, so the first found square wins a tie.
type PriorityQueue []*Item

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*Item)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}
