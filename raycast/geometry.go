package raycast

import "math"

// Vec2 is a point or direction in pixel space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Round snaps v to the nearest whole pixel
func (v Vec2) Round() Vec2 { return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)} }

// Ray is cast from an observer toward a point. Its magnitude starts at 1
// (reaching the point) and shrinks to the nearest wall it crosses.
type Ray struct {
	start   Vec2
	end     Vec2
	dir     Vec2
	bearing float64
}

// NewRay creates a ray from start to end
func NewRay(start, end Vec2) Ray {
	dir := end.Sub(start)
	return Ray{
		start:   start,
		end:     end,
		dir:     dir,
		bearing: Bearing(dir),
	}
}

// Start returns the ray origin
func (r Ray) Start() Vec2 { return r.start }

// End returns the current end point of the ray
func (r Ray) End() Vec2 { return r.end }

// Direction returns the vector from start to the current end
func (r Ray) Direction() Vec2 { return r.dir }

// Bearing returns the clockwise angle from north in [0, 2π)
func (r Ray) Bearing() float64 { return r.bearing }

// Length returns the current length of the ray
func (r Ray) Length() float64 { return r.dir.Len() }

// SetMagnitude scales the ray so its end sits at start + dir*m.
// The bearing is unchanged for any positive m.
func (r *Ray) SetMagnitude(m float64) {
	r.end = r.start.Add(r.dir.Scale(m))
	r.dir = r.end.Sub(r.start)
}

// Bearing returns the clockwise angle of dir from north (screen up, -y) in [0, 2π)
func Bearing(dir Vec2) float64 {
	b := math.Atan2(dir.X, -dir.Y)
	if b < 0 {
		b += 2 * math.Pi
	}
	return b
}

// OffsetRay returns a ray from the same origin, rotated clockwise by delta
// radians and keeping the original length
func OffsetRay(r Ray, delta float64) Ray {
	angle := r.bearing + delta
	length := r.Length()
	end := Vec2{
		X: r.start.X + math.Sin(angle)*length,
		Y: r.start.Y - math.Cos(angle)*length,
	}
	return NewRay(r.start, end)
}

// Edge is a fixed wall segment
type Edge struct {
	start Vec2
	end   Vec2
	dir   Vec2
}

// NewEdge creates a wall segment between two points
func NewEdge(start, end Vec2) Edge {
	return Edge{start: start, end: end, dir: end.Sub(start)}
}

// Start returns the first end point of the edge
func (e Edge) Start() Vec2 { return e.start }

// End returns the second end point of the edge
func (e Edge) End() Vec2 { return e.end }

// Direction returns end - start
func (e Edge) Direction() Vec2 { return e.dir }

// Intersect returns the fraction t1 of the ray at which it crosses edge.
// A hit needs t1 in (0, 1) along the ray and t2 in [0, 1] along the edge.
// Rays with a zero x or y component are never reported as hitting.
func Intersect(ray Ray, edge Edge) (float64, bool) {
	rp, rd := ray.start, ray.dir
	ep, ed := edge.start, edge.dir

	if rd.X == 0 || rd.Y == 0 {
		return 0, false
	}

	denom := ed.X*rd.Y - ed.Y*rd.X
	if denom == 0 {
		// parallel
		return 0, false
	}

	t2 := (rd.X*(ep.Y-rp.Y) + rd.Y*(rp.X-ep.X)) / denom
	t1 := (ep.X + ed.X*t2 - rp.X) / rd.X

	if t2 < 0 || t2 > 1 {
		return 0, false
	}
	if t1 <= 0 || t1 >= 1 {
		return 0, false
	}
	return t1, true
}

// TriangleArea returns the unsigned area of the triangle abc
func TriangleArea(a, b, c Vec2) float64 {
	return math.Abs((a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2)
}
