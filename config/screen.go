package config

// Screen layout configuration for the debug viewers
const (
	// Tile size in pixels, used for pixel-space room and corridor geometry
	TileSize = 32

	// Viewer dimensions in tiles
	ScreenWidth  = 40
	ScreenHeight = 24

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1280, 768
}
