package raycast

import (
	"fmt"
	"math"
	"sort"
)

const (
	// CornerOffset is the angle either side of a corner at which extra rays
	// are cast to find the walls just past its silhouette
	CornerOffset = 0.01

	// OffsetMagnitude is how far the offset rays reach, as a multiple of
	// the distance to their corner
	OffsetMagnitude = 50

	// DefaultTolerance is the area slack of the visibility test, in pixel² units
	DefaultTolerance = 5
)

// Triangle is one slice of the visibility fan
type Triangle struct {
	A, B, C Vec2
}

// RaySource computes the visibility polygon around an observer from a set
// of corner points and wall edges
type RaySource struct {
	pos     Vec2
	corners []Vec2
	edges   []Edge
	rays    []Ray

	// Tolerance is the area difference still accepted as inside a triangle
	Tolerance float64
}

// NewRaySource creates a ray source with no geometry
func NewRaySource() *RaySource {
	return &RaySource{Tolerance: DefaultTolerance}
}

// Update moves the observer and rebuilds every ray against the given geometry
func (s *RaySource) Update(pos Vec2, corners []Vec2, edges []Edge) {
	s.pos = pos
	s.corners = corners
	s.edges = edges
	s.castRays()
	s.clampRays()
}

// Position returns the observer position of the last update
func (s *RaySource) Position() Vec2 {
	return s.pos
}

// Rays returns the clamped rays ordered by bearing
func (s *RaySource) Rays() []Ray {
	return s.rays
}

// Edges returns the wall edges of the last update
func (s *RaySource) Edges() []Edge {
	return s.edges
}

// castRays casts a central ray at every corner plus one ray either side of it
func (s *RaySource) castRays() {
	s.rays = s.rays[:0]
	for _, corner := range s.corners {
		central := NewRay(s.pos, corner)
		if central.Length() == 0 {
			continue
		}
		left := OffsetRay(central, CornerOffset)
		right := OffsetRay(central, -CornerOffset)
		left.SetMagnitude(OffsetMagnitude)
		right.SetMagnitude(OffsetMagnitude)
		s.rays = append(s.rays, central, left, right)
	}

	sort.SliceStable(s.rays, func(i, j int) bool {
		return s.rays[i].bearing < s.rays[j].bearing
	})
}

// clampRays shortens every ray to its nearest wall crossing
func (s *RaySource) clampRays() {
	for i := range s.rays {
		nearest := math.Inf(1)
		for _, edge := range s.edges {
			if t, ok := Intersect(s.rays[i], edge); ok && t < nearest {
				nearest = t
			}
		}
		if !math.IsInf(nearest, 1) {
			s.rays[i].SetMagnitude(nearest)
		}
	}
}

// Triangles returns the visibility fan: one triangle between the observer and
// each pair of consecutive ray ends, wrapping from the last ray to the first
func (s *RaySource) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(s.rays))
	for i := range s.rays {
		prev := s.rays[(i+len(s.rays)-1)%len(s.rays)]
		tris = append(tris, Triangle{A: s.pos, B: prev.end, C: s.rays[i].end})
	}
	return tris
}

// IsVisible reports whether p lies inside the visibility fan. Points are
// snapped to whole pixels first, so equal inputs always give equal answers.
func (s *RaySource) IsVisible(p Vec2) bool {
	p = p.Round()
	for _, tri := range s.Triangles() {
		a, b, c := tri.A.Round(), tri.B.Round(), tri.C.Round()

		whole := math.Round(TriangleArea(a, b, c))
		a1 := math.Round(TriangleArea(p, b, c))
		a2 := math.Round(TriangleArea(a, p, c))
		a3 := math.Round(TriangleArea(a, b, p))

		if math.Abs(a1+a2+a3-whole) < s.Tolerance {
			return true
		}
	}
	return false
}

func (s *RaySource) String() string {
	return fmt.Sprintf("%d rays from (%.0f,%.0f)", len(s.rays), s.pos.X, s.pos.Y)
}
