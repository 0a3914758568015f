package raycast

import (
	"sort"
)

// axisLine identifies the line an axis-aligned edge runs along
type axisLine struct {
	vertical bool
	at       float64
}

// span is an axis-aligned edge projected onto its line
type span struct {
	lo, hi float64
	index  int
}

// SeparateEdges removes overlap between colinear axis-aligned edges, such as
// a corridor end running along a room wall. Where edges overlap, only the
// parts covered an odd number of times survive, so the room wall
// [0,10] overlapped by a doorway [3,7] becomes [0,3] and [7,10].
// Edges that overlap nothing, and diagonal edges, are returned unchanged.
func SeparateEdges(edges []Edge) []Edge {
	lines := make(map[axisLine][]span)
	var keys []axisLine
	result := make([]Edge, 0, len(edges))
	overlapping := make([]bool, len(edges))

	for i, e := range edges {
		line, s, ok := project(e)
		if !ok {
			continue
		}
		s.index = i
		if _, seen := lines[line]; !seen {
			keys = append(keys, line)
		}
		lines[line] = append(lines[line], s)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].vertical != keys[j].vertical {
			return !keys[i].vertical
		}
		return keys[i].at < keys[j].at
	})

	var separated []Edge
	for _, line := range keys {
		for _, cluster := range overlapClusters(lines[line]) {
			if len(cluster) < 2 {
				continue
			}
			for _, s := range cluster {
				overlapping[s.index] = true
			}
			for _, piece := range oddCoverage(cluster) {
				separated = append(separated, line.edge(piece.lo, piece.hi))
			}
		}
	}

	for i, e := range edges {
		if !overlapping[i] {
			result = append(result, e)
		}
	}
	return append(result, separated...)
}

// project maps an axis-aligned edge onto its line
func project(e Edge) (axisLine, span, bool) {
	switch {
	case e.dir.X == 0 && e.dir.Y != 0:
		lo, hi := order(e.start.Y, e.end.Y)
		return axisLine{vertical: true, at: e.start.X}, span{lo: lo, hi: hi}, true
	case e.dir.Y == 0 && e.dir.X != 0:
		lo, hi := order(e.start.X, e.end.X)
		return axisLine{vertical: false, at: e.start.Y}, span{lo: lo, hi: hi}, true
	}
	return axisLine{}, span{}, false
}

func (l axisLine) edge(lo, hi float64) Edge {
	if l.vertical {
		return NewEdge(Vec2{X: l.at, Y: lo}, Vec2{X: l.at, Y: hi})
	}
	return NewEdge(Vec2{X: lo, Y: l.at}, Vec2{X: hi, Y: l.at})
}

// overlapClusters groups spans that share some positive length, directly or
// through other spans. Spans that only touch end to end stay apart.
func overlapClusters(spans []span) [][]span {
	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].lo < sorted[j].lo })

	var clusters [][]span
	var current []span
	reach := 0.0
	for _, s := range sorted {
		if len(current) > 0 && s.lo < reach {
			current = append(current, s)
			if s.hi > reach {
				reach = s.hi
			}
			continue
		}
		if len(current) > 0 {
			clusters = append(clusters, current)
		}
		current = []span{s}
		reach = s.hi
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}

// oddCoverage cuts a cluster at every end point and keeps the pieces covered
// by an odd number of spans, joining neighbouring pieces
func oddCoverage(cluster []span) []span {
	points := make([]float64, 0, 2*len(cluster))
	for _, s := range cluster {
		points = append(points, s.lo, s.hi)
	}
	sort.Float64s(points)

	var pieces []span
	for i := 0; i+1 < len(points); i++ {
		lo, hi := points[i], points[i+1]
		if lo == hi {
			continue
		}
		covered := 0
		for _, s := range cluster {
			if s.lo <= lo && s.hi >= hi {
				covered++
			}
		}
		if covered%2 == 0 {
			continue
		}
		if n := len(pieces); n > 0 && pieces[n-1].hi == lo {
			pieces[n-1].hi = hi
			continue
		}
		pieces = append(pieces, span{lo: lo, hi: hi})
	}
	return pieces
}

func order(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
