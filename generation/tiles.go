package generation

import "ebiten-delve/components"

// renderTiles draws every room outline, then every corridor. A corridor's end
// tiles are forced to wall while the tiles along its long sides are flipped,
// which opens a doorway wherever a side crosses an existing wall and closes
// the corridor off where it runs through open space.
func renderTiles(columns, rows int, rooms []Room, corridors []Corridor) *components.TileGrid {
	grid := components.NewTileGrid(columns, rows)

	for _, room := range rooms {
		drawOutline(grid, room.Bounds())
	}

	for _, corridor := range corridors {
		r := corridor.Rect

		for dx := 0; dx < r.Width; dx++ {
			if dx == 0 || dx == r.Width-1 {
				grid.SetTile(r.X+dx, r.Y, components.TileWall)
				grid.SetTile(r.X+dx, r.EndY(), components.TileWall)
				continue
			}
			grid.ToggleWall(r.X+dx, r.Y)
			grid.ToggleWall(r.X+dx, r.EndY())
		}

		for dy := 0; dy < r.Height; dy++ {
			if dy == 0 || dy == r.Height-1 {
				grid.SetTile(r.X, r.Y+dy, components.TileWall)
				grid.SetTile(r.EndX(), r.Y+dy, components.TileWall)
				continue
			}
			grid.ToggleWall(r.X, r.Y+dy)
			grid.ToggleWall(r.EndX(), r.Y+dy)
		}
	}

	return grid
}

// drawOutline sets the border tiles of r to wall
func drawOutline(grid *components.TileGrid, r Rect) {
	for x := r.X; x <= r.EndX(); x++ {
		grid.SetTile(x, r.Y, components.TileWall)
		grid.SetTile(x, r.EndY(), components.TileWall)
	}
	for y := r.Y; y <= r.EndY(); y++ {
		grid.SetTile(r.X, y, components.TileWall)
		grid.SetTile(r.EndX(), y, components.TileWall)
	}
}
