package generation

// Rect is an axis-aligned block of tiles. X and Y are the top-left tile.
type Rect struct {
	X, Y          int
	Width, Height int
}

// EndX returns the right-most column of the rect
func (r Rect) EndX() int { return r.X + r.Width - 1 }

// EndY returns the bottom row of the rect
func (r Rect) EndY() int { return r.Y + r.Height - 1 }

// Interior reports whether (x, y) lies strictly inside the rect's outline
func (r Rect) Interior(x, y int) bool {
	return r.X < x && x < r.EndX() && r.Y < y && y < r.EndY()
}

// Contains reports whether (x, y) lies on or inside the rect's outline
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x <= r.EndX() && r.Y <= y && y <= r.EndY()
}

// ContainsRect reports whether o fits entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return r.X <= o.X && o.EndX() <= r.EndX() && r.Y <= o.Y && o.EndY() <= r.EndY()
}

// Region is a rectangular subdivision of the level produced by splitting.
// Once its subtree has been merged it lists every room of its left and right
// halves and every corridor linking them, as indices into the level's arenas.
type Region struct {
	Depth int
	Rect

	LeftRooms  []int
	RightRooms []int
	Corridors  []int
}

// Rooms returns every room in the region, left half first
func (r *Region) Rooms() []int {
	rooms := make([]int, 0, len(r.LeftRooms)+len(r.RightRooms))
	rooms = append(rooms, r.LeftRooms...)
	return append(rooms, r.RightRooms...)
}

// Room is a rectangular play space placed inside a leaf region.
// Rooms never change once placed.
type Room struct {
	region int
	rel    [2]int
	bounds Rect
}

// NewRoom places a width x height room at (relX, relY) inside region
func NewRoom(regionIndex int, region Rect, relX, relY, width, height int) Room {
	return Room{
		region: regionIndex,
		rel:    [2]int{relX, relY},
		bounds: Rect{
			X:      region.X + relX,
			Y:      region.Y + relY,
			Width:  width,
			Height: height,
		},
	}
}

// Region returns the index of the tree node the room was placed in
func (r Room) Region() int { return r.region }

// RelX returns the room's column offset inside its region
func (r Room) RelX() int { return r.rel[0] }

// RelY returns the room's row offset inside its region
func (r Room) RelY() int { return r.rel[1] }

// X returns the room's left column
func (r Room) X() int { return r.bounds.X }

// Y returns the room's top row
func (r Room) Y() int { return r.bounds.Y }

// Width returns the room's width in tiles, walls included
func (r Room) Width() int { return r.bounds.Width }

// Height returns the room's height in tiles, walls included
func (r Room) Height() int { return r.bounds.Height }

// EndX returns the room's right-most column
func (r Room) EndX() int { return r.bounds.EndX() }

// EndY returns the room's bottom row
func (r Room) EndY() int { return r.bounds.EndY() }

// Bounds returns the room's rect
func (r Room) Bounds() Rect { return r.bounds }

// Direction is the axis a corridor runs along
type Direction int

const (
	// Horizontal corridors join a left room to a right room
	Horizontal Direction = iota
	// Vertical corridors join a top room to a bottom room
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "V"
	}
	return "H"
}

// Corridor links two rooms. Unlike Room its geometry is plain mutable data:
// corridors are widened after the tile grid has been drawn.
type Corridor struct {
	Rect
	Region    int
	LeftRoom  int
	RightRoom int
	Direction Direction
}

// Bounds returns the corridor's rect
func (c Corridor) Bounds() Rect { return c.Rect }

// Rooms returns the two rooms the corridor links
func (c Corridor) Rooms() (int, int) { return c.LeftRoom, c.RightRoom }

// Widen grows the corridor by margin tiles at both ends along its direction,
// so its interior reaches into the rooms it links
func (c *Corridor) Widen(margin int) {
	if c.Direction == Vertical {
		c.Y -= margin
		c.Height += 2 * margin
		return
	}
	c.X -= margin
	c.Width += 2 * margin
}

// WidenCorridors widens every corridor in place
func WidenCorridors(corridors []Corridor, margin int) {
	for i := range corridors {
		corridors[i].Widen(margin)
	}
}
