package pathfind

import "fmt"

// Route is a waypoint stack. The tile nearest the start sits on top, so an
// agent follows the route by popping one tile at a time until it is empty.
type Route struct {
	waypoints []Point
}

// NewRoute wraps waypoints ordered from the target back toward the start
func NewRoute(waypoints []Point) *Route {
	return &Route{waypoints: waypoints}
}

// Pop removes and returns the next tile to move to
func (r *Route) Pop() (Point, bool) {
	if len(r.waypoints) == 0 {
		return Point{}, false
	}
	last := len(r.waypoints) - 1
	p := r.waypoints[last]
	r.waypoints = r.waypoints[:last]
	return p, true
}

// Peek returns the next tile without consuming it
func (r *Route) Peek() (Point, bool) {
	if len(r.waypoints) == 0 {
		return Point{}, false
	}
	return r.waypoints[len(r.waypoints)-1], true
}

// Push puts a tile back on top of the route
func (r *Route) Push(p Point) {
	r.waypoints = append(r.waypoints, p)
}

// Len returns the number of tiles left to walk
func (r *Route) Len() int {
	return len(r.waypoints)
}

// Target returns the final tile of the route
func (r *Route) Target() (Point, bool) {
	if len(r.waypoints) == 0 {
		return Point{}, false
	}
	return r.waypoints[0], true
}

// Waypoints returns the remaining tiles in walking order
func (r *Route) Waypoints() []Point {
	ordered := make([]Point, len(r.waypoints))
	for i, p := range r.waypoints {
		ordered[len(r.waypoints)-1-i] = p
	}
	return ordered
}

func (r *Route) String() string {
	if r == nil {
		return "no route"
	}
	if t, ok := r.Target(); ok {
		return fmt.Sprintf("%d steps to (%d,%d)", len(r.waypoints), t.X, t.Y)
	}
	return "arrived"
}
