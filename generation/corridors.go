package generation

import (
	"fmt"

	"ebiten-delve/config"
)

// linkRegions merges every split node bottom-up, adding one corridor
// between the rooms of its two halves
func (g *LevelGenerator) linkRegions(tree *LevelTree, rooms []Room) ([]Corridor, error) {
	var corridors []Corridor
	if err := g.link(tree, 0, rooms, &corridors); err != nil {
		return nil, err
	}
	return corridors, nil
}

func (g *LevelGenerator) link(tree *LevelTree, index int, rooms []Room, corridors *[]Corridor) error {
	node := tree.Node(index)
	if node.IsLeaf() {
		return nil
	}

	if err := g.link(tree, node.Left, rooms, corridors); err != nil {
		return err
	}
	if err := g.link(tree, node.Right, rooms, corridors); err != nil {
		return err
	}

	left := &tree.Node(node.Left).Region
	right := &tree.Node(node.Right).Region

	node.Region.LeftRooms = left.Rooms()
	node.Region.RightRooms = right.Rooms()
	node.Region.Corridors = make([]int, 0, len(left.Corridors)+len(right.Corridors)+1)
	node.Region.Corridors = append(node.Region.Corridors, left.Corridors...)
	node.Region.Corridors = append(node.Region.Corridors, right.Corridors...)

	corridor, err := g.buildCorridor(node, rooms)
	if err != nil {
		return fmt.Errorf("region %d at depth %d: %w", index, node.Region.Depth, err)
	}
	corridor.Region = index

	node.Region.Corridors = append(node.Region.Corridors, len(*corridors))
	*corridors = append(*corridors, corridor)
	return nil
}

// buildCorridor joins the two facing rooms of a split node
func (g *LevelGenerator) buildCorridor(node *BinarySplitNode, rooms []Room) (Corridor, error) {
	if node.Axis == SplitRows {
		// The lowest room of the top half meets the highest room of the bottom half
		top := pickRoom(rooms, node.Region.LeftRooms, func(a, b Room) bool { return a.EndY() > b.EndY() })
		bottom := pickRoom(rooms, node.Region.RightRooms, func(a, b Room) bool { return a.Y() < b.Y() })

		x, err := g.corridorOffset(rooms[top].X(), rooms[top].EndX(), rooms[bottom].X(), rooms[bottom].EndX())
		if err != nil {
			return Corridor{}, err
		}

		// Linked rooms are recorded left to right, whatever the split axis
		left, right := top, bottom
		if rooms[left].X() > rooms[right].X() {
			left, right = bottom, top
		}

		y := rooms[top].EndY()
		return Corridor{
			Rect: Rect{
				X:      x,
				Y:      y,
				Width:  config.CorridorThickness,
				Height: rooms[bottom].Y() - y + 1,
			},
			LeftRoom:  left,
			RightRoom: right,
			Direction: Vertical,
		}, nil
	}

	// The right-most room of the left half meets the left-most room of the right half
	left := pickRoom(rooms, node.Region.LeftRooms, func(a, b Room) bool { return a.EndX() > b.EndX() })
	right := pickRoom(rooms, node.Region.RightRooms, func(a, b Room) bool { return a.X() < b.X() })

	y, err := g.corridorOffset(rooms[left].Y(), rooms[left].EndY(), rooms[right].Y(), rooms[right].EndY())
	if err != nil {
		return Corridor{}, err
	}

	x := rooms[left].EndX()
	return Corridor{
		Rect: Rect{
			X:      x,
			Y:      y,
			Width:  rooms[right].X() - x + 1,
			Height: config.CorridorThickness,
		},
		LeftRoom:  left,
		RightRoom: right,
		Direction: Horizontal,
	}, nil
}

// pickRoom returns the first room in ids for which better holds against every other
func pickRoom(rooms []Room, ids []int, better func(a, b Room) bool) int {
	best := ids[0]
	for _, id := range ids[1:] {
		if better(rooms[id], rooms[best]) {
			best = id
		}
	}
	return best
}

// corridorOffset picks where a corridor crosses two rooms' spans [aLo, aHi]
// and [bLo, bHi] on the axis across its direction. The corridor either fits
// inside the narrower room when the wider one covers it, or inside the shared
// part of both spans.
func (g *LevelGenerator) corridorOffset(aLo, aHi, bLo, bHi int) (int, error) {
	bigLo, bigHi, smallLo, smallHi := aLo, aHi, bLo, bHi
	if smallHi-smallLo > bigHi-bigLo {
		bigLo, bigHi, smallLo, smallHi = bLo, bHi, aLo, aHi
	}

	if bigLo <= smallLo && bigHi >= smallHi {
		smallSize := smallHi - smallLo + 1
		return smallLo + g.randInt(0, smallSize-config.CorridorThickness), nil
	}

	firstHi, secondLo := aHi, bLo
	if aLo > bLo {
		firstHi, secondLo = bHi, aLo
	}

	overlap := firstHi - secondLo
	if overlap >= config.MinStraightOverlap {
		return secondLo + g.randInt(0, overlap-config.MinStraightOverlap), nil
	}

	return 0, fmt.Errorf("%w: spans [%d,%d] and [%d,%d] overlap by %d", errCorridorLink, aLo, aHi, bLo, bHi, overlap)
}
