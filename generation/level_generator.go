package generation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"ebiten-delve/components"
	"ebiten-delve/config"
)

var (
	// ErrInvalidConfiguration is returned for level settings that can never
	// produce a level
	ErrInvalidConfiguration = config.ErrInvalidConfiguration

	// ErrGenerationFailed is returned when every generation attempt failed
	ErrGenerationFailed = errors.New("level generation failed")

	errCorridorLink = errors.New("rooms cannot be linked by a corridor")
)

// Result is a finished level layout
type Result struct {
	Tree      *LevelTree
	Rooms     []Room
	Corridors []Corridor
	Tiles     *components.TileGrid

	// Attempts is how many tries the generator needed
	Attempts int
}

// String renders the tile grid, one row per line
func (r *Result) String() string {
	return r.Tiles.String()
}

// LevelGenerator builds levels by binary space partitioning
type LevelGenerator struct {
	cfg     config.LevelConfig
	rng     *rand.Rand
	logFunc func(string)
}

// NewLevelGenerator creates a generator for the given settings
func NewLevelGenerator(cfg config.LevelConfig) (*LevelGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &LevelGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *LevelGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetLogFunc sets a callback for generator diagnostics
func (g *LevelGenerator) SetLogFunc(f func(string)) {
	g.logFunc = f
}

// Config returns the generator's settings
func (g *LevelGenerator) Config() config.LevelConfig {
	return g.cfg
}

func (g *LevelGenerator) log(format string, args ...any) {
	if g.logFunc != nil {
		g.logFunc(fmt.Sprintf(format, args...))
	}
}

// Generate builds a level. A failed attempt, such as two rooms that no
// corridor can join, discards everything and starts over from a fresh root.
func (g *LevelGenerator) Generate() (*Result, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		res, err := g.generateOnce()
		if err == nil {
			res.Attempts = attempt
			g.log("DEBUG: generated %d rooms and %d corridors in %d attempt(s)",
				len(res.Rooms), len(res.Corridors), attempt)
			return res, nil
		}
		lastErr = err
		g.log("DEBUG: generation attempt %d failed: %v", attempt, err)
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, g.cfg.MaxAttempts, lastErr)
}

func (g *LevelGenerator) generateOnce() (*Result, error) {
	tree := NewLevelTree(g.cfg.Columns, g.cfg.Rows)

	// Split the space
	if err := g.split(tree, 0); err != nil {
		return nil, err
	}

	// Place one room per leaf
	rooms := g.placeRooms(tree)

	// Link sibling subtrees bottom-up
	corridors, err := g.linkRegions(tree, rooms)
	if err != nil {
		return nil, err
	}

	// Draw the outlines and carve the doorways
	tiles := renderTiles(g.cfg.Columns, g.cfg.Rows, rooms, corridors)

	return &Result{
		Tree:      tree,
		Rooms:     rooms,
		Corridors: corridors,
		Tiles:     tiles,
	}, nil
}

// placeRooms puts one randomly sized and positioned room in every leaf
func (g *LevelGenerator) placeRooms(tree *LevelTree) []Room {
	leaves := tree.Leaves()
	rooms := make([]Room, 0, len(leaves))

	for _, leaf := range leaves {
		node := tree.Node(leaf)
		region := node.Region.Rect

		width := g.randInt(minRoomSide(region.Width), region.Width)
		height := g.randInt(minRoomSide(region.Height), region.Height)
		relX := g.randInt(0, region.Width-width)
		relY := g.randInt(0, region.Height-height)

		node.Region.LeftRooms = append(node.Region.LeftRooms, len(rooms))
		rooms = append(rooms, NewRoom(leaf, region, relX, relY, width, height))
	}

	return rooms
}

// minRoomSide is the smallest room side allowed in a region side of size
func minRoomSide(size int) int {
	return max(config.MinRoomSize, int(math.Round(0.3*float64(size))))
}

// randInt returns a uniform integer in [lo, hi]
func (g *LevelGenerator) randInt(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
