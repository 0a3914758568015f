package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-delve/config"
)

// BaseScreen provides the fixed logical layout shared by all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {
	// Base screen does nothing by default
}

// Layout implements the Screen interface
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// drawColoredText prints text at (x, y) tinted with clr
func drawColoredText(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	line := ebiten.NewImage(len(text)*6+6, 16)
	ebitenutil.DebugPrintAt(line, text, 0, 0)

	r, g, b, _ := clr.RGBA()
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, 1)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(line, op)
}
