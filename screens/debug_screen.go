package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-delve/systems"
)

// DebugScreen shows the message log in a scrollable modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
}

// NewDebugScreen creates a new debug screen over log
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		log:        log,
		width:      900,
		height:     500,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through debug messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}

	// ESC or F1 closes the window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 2, color.White, false)

	drawColoredText(screen, "MESSAGE LOG", x+(s.width-11*6)/2, y+6, color.White)

	messages := s.log.Messages
	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = max(0, len(messages)-maxLines)
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		drawColoredText(screen, msg.Text, x+10, y+startY+i*lineHeight, msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		track := float32(s.height - startY - 24)
		barHeight := float32(maxLines) / float32(len(messages)) * track
		barY := float32(y+startY) + float32(startIdx)/float32(len(messages))*track
		vector.DrawFilledRect(screen, float32(x+s.width-10), barY, 5, barHeight, color.White, false)
	}

	drawColoredText(screen, "Up/Down: Scroll  ESC: Close", x+10, y+s.height-20, color.White)
}
