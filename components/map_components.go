package components

import "strings"

// Tile types
const (
	TileFloor = iota
	TileWall
)

// TileGrid stores the generated level layout as rows of tiles.
// It is built once by the generator and read-only afterwards.
type TileGrid struct {
	Width  int
	Height int
	Tiles  [][]int
}

// NewTileGrid creates an open grid with the given dimensions
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{
		Width:  width,
		Height: height,
		Tiles:  make([][]int, height),
	}

	for y := 0; y < height; y++ {
		g.Tiles[y] = make([]int, width)
	}

	return g
}

// IsWall returns true if the tile at (x, y) is a wall.
// Out of bounds is considered a wall.
func (g *TileGrid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Tiles[y][x] == TileWall
}

// InBounds reports whether (x, y) lies on the grid
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// SetTile sets the tile at the given position
func (g *TileGrid) SetTile(x, y, tileType int) {
	if g.InBounds(x, y) {
		g.Tiles[y][x] = tileType
	}
}

// ToggleWall flips a wall tile to floor and a floor tile to wall
func (g *TileGrid) ToggleWall(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	if g.Tiles[y][x] == TileWall {
		g.Tiles[y][x] = TileFloor
	} else {
		g.Tiles[y][x] = TileWall
	}
}

// WallPositions returns every wall tile, row by row
func (g *TileGrid) WallPositions() []PathNode {
	var walls []PathNode
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == TileWall {
				walls = append(walls, PathNode{X: x, Y: y})
			}
		}
	}
	return walls
}

// String renders the grid with '#' for walls and ' ' for open tiles
func (g *TileGrid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == TileWall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
