package generation

import (
	"errors"
	"fmt"
	"math"

	"ebiten-delve/config"
)

// SplitAxis records how a node was divided
type SplitAxis int

const (
	// NotSplit marks a leaf
	NotSplit SplitAxis = iota
	// SplitColumns divides a node into a left and a right half
	SplitColumns
	// SplitRows divides a node into a top and a bottom half
	SplitRows
)

// maxSplitAttempts bounds the random retries spent on a single node
const maxSplitAttempts = 1000

var errSplit = errors.New("no valid split found")

// BinarySplitNode is one node of the level tree. Children are indices into
// the tree's node arena, -1 when absent.
type BinarySplitNode struct {
	Region Region
	Axis   SplitAxis
	Parent int
	Left   int
	Right  int
}

// IsLeaf reports whether the node was never split
func (n *BinarySplitNode) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

// LevelTree is the binary split tree of a level, stored as a flat arena.
// The root is always node 0.
type LevelTree struct {
	Nodes []BinarySplitNode
}

// NewLevelTree creates a tree holding a single root region covering the level
func NewLevelTree(columns, rows int) *LevelTree {
	return &LevelTree{
		Nodes: []BinarySplitNode{{
			Region: Region{Rect: Rect{Width: columns, Height: rows}},
			Parent: -1,
			Left:   -1,
			Right:  -1,
		}},
	}
}

// Root returns the root node
func (t *LevelTree) Root() *BinarySplitNode {
	return &t.Nodes[0]
}

// Node returns the node at index i
func (t *LevelTree) Node(i int) *BinarySplitNode {
	return &t.Nodes[i]
}

// addChildren attaches two child regions to the node at parent
func (t *LevelTree) addChildren(parent int, axis SplitAxis, left, right Region) (int, int) {
	li := len(t.Nodes)
	t.Nodes = append(t.Nodes,
		BinarySplitNode{Region: left, Parent: parent, Left: -1, Right: -1},
		BinarySplitNode{Region: right, Parent: parent, Left: -1, Right: -1},
	)
	t.Nodes[parent].Left = li
	t.Nodes[parent].Right = li + 1
	t.Nodes[parent].Axis = axis
	return li, li + 1
}

// Leaves returns the indices of every leaf, in split order
func (t *LevelTree) Leaves() []int {
	var leaves []int
	for i := range t.Nodes {
		if t.Nodes[i].IsLeaf() {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

// ValidRegion reports whether a region can still take the given number of
// further splits without any leaf falling below the minimum room size
func ValidRegion(width, height, splits int) bool {
	return config.Splittable(width, height, splits)
}

// splitRegion divides region at pos along axis
func splitRegion(region Region, axis SplitAxis, pos int) (Region, Region) {
	left := Region{Depth: region.Depth + 1, Rect: region.Rect}
	right := Region{Depth: region.Depth + 1, Rect: region.Rect}

	if axis == SplitColumns {
		left.Width = pos
		right.X = region.X + pos
		right.Width = region.Width - pos
	} else {
		left.Height = pos
		right.Y = region.Y + pos
		right.Height = region.Height - pos
	}
	return left, right
}

// split recursively divides the node at index until maxDepth is reached
func (g *LevelGenerator) split(tree *LevelTree, index int) error {
	region := tree.Node(index).Region
	if region.Depth >= g.cfg.MaxDepth {
		return nil
	}
	remaining := g.cfg.MaxDepth - region.Depth - 1

	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		// Both the axis and the split point are re-rolled on every attempt
		axis := SplitColumns
		size := region.Width
		if g.rng.Intn(2) == 1 {
			axis = SplitRows
			size = region.Height
		}

		deviation := g.rng.Float64()*2*g.cfg.SplitDeviation - g.cfg.SplitDeviation
		pos := int(math.Round(float64(size)/2 + float64(size)*deviation))
		if pos <= 0 || pos >= size {
			continue
		}

		left, right := splitRegion(region, axis, pos)
		if !ValidRegion(left.Width, left.Height, remaining) || !ValidRegion(right.Width, right.Height, remaining) {
			continue
		}

		li, ri := tree.addChildren(index, axis, left, right)
		if err := g.split(tree, li); err != nil {
			return err
		}
		return g.split(tree, ri)
	}

	return fmt.Errorf("%w for %dx%d region at depth %d", errSplit, region.Width, region.Height, region.Depth)
}
