package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens.
// Escape or Enter closes it.
type ModalScreen struct {
	*BaseScreen
	title      string
	lines      []string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen sized to fit its lines
func NewModalScreen(title string, lines []string) *ModalScreen {
	width := len(title)*6 + 40
	for _, l := range lines {
		width = max(width, len(l)*6+20)
	}
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		lines:      lines,
		width:      width,
		height:     50 + 16*len(lines),
		background: color.RGBA{0, 0, 0, 220}, // Semi-transparent black
		textColor:  color.White,
	}
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrCloseScreen
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float32(screenWidth-s.width) / 2
	y := float32(screenHeight-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	titleX := int(x) + (s.width-len(s.title)*6)/2 // Approximate text width
	drawColoredText(screen, s.title, titleX, int(y)+10, color.RGBA{255, 230, 150, 255})

	for i, line := range s.lines {
		drawColoredText(screen, line, int(x)+10, int(y)+34+16*i, s.textColor)
	}
}
