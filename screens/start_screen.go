package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen is the viewer's menu: explore the level, roll a new seed or quit
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	summary        []string
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen showing the level summary lines
func NewStartScreen(summary []string) *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(),
		options: []string{
			"Explore Level",
			"New Seed",
			"Quit",
		},
		summary:       summary,
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	// Handle arrow key navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch s.selectedOption {
		case 0:
			return ErrNewGame
		case 1:
			return ErrReroll
		case 2:
			return ErrQuit
		}
	}

	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := screenWidth / 2
	centerY := screenHeight / 2

	title := "DELVE"
	drawColoredText(screen, title, centerX-len(title)*3, centerY-140, s.titleColor)

	for i, line := range s.summary {
		drawColoredText(screen, line, centerX-len(line)*3, centerY-110+16*i, s.optionColor)
	}

	// Draw options
	optionSpacing := 30
	startY := centerY + 20
	for i, option := range s.options {
		textColor := s.optionColor
		label := option
		if i == s.selectedOption {
			textColor = s.selectedColor
			label = fmt.Sprintf("> %s <", option)
		}
		drawColoredText(screen, label, centerX-len(label)*3, startY+i*optionSpacing, textColor)
	}
}
