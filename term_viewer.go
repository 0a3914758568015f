package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-delve/components"
	"ebiten-delve/pathfind"
	"ebiten-delve/sim"
	"ebiten-delve/systems"
)

// termTick is how often the terminal viewer advances the session
const termTick = 50 * time.Millisecond

var termKeys = map[tcell.Key]int{
	tcell.KeyUp:    systems.DirUp,
	tcell.KeyDown:  systems.DirDown,
	tcell.KeyLeft:  systems.DirLeft,
	tcell.KeyRight: systems.DirRight,
}

var termRunes = map[rune]int{
	'h': systems.DirLeft,
	'j': systems.DirDown,
	'k': systems.DirUp,
	'l': systems.DirRight,
	'y': systems.DirUpLeft,
	'u': systems.DirUpRight,
	'b': systems.DirDownLeft,
	'n': systems.DirDownRight,
}

// TermViewer draws a session in the terminal, highlighting the tiles inside
// the observer's visibility fan
type TermViewer struct {
	screen  tcell.Screen
	session *sim.Session
	log     *systems.MessageLog
}

// runTerminal runs the terminal viewer until the user quits
func runTerminal(session *sim.Session, log *systems.MessageLog) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &TermViewer{screen: screen, session: session, log: log}
	return v.loop()
}

// pollEvents forwards events from poll until poll returns nil or done is
// closed. The returned channel is closed when the pump stops.
func pollEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			select {
			case <-done:
				return
			default:
			}

			ev := poll()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (v *TermViewer) loop() error {
	done := make(chan struct{})
	defer close(done)
	events := pollEvents(v.screen.PollEvent, done)

	ticker := time.NewTicker(termTick)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				if dir, ok := termKeys[ev.Key()]; ok {
					v.session.Move(dir)
				} else if dir, ok := termRunes[ev.Rune()]; ok && ev.Key() == tcell.KeyRune {
					v.session.Move(dir)
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			v.session.Step(termTick.Seconds())
			v.draw()
		}
	}
}

func (v *TermViewer) draw() {
	v.screen.Clear()

	cam := v.session.Camera
	lvl := v.session.Level
	tiles := lvl.Tiles()
	view := v.session.View()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	litStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := cam.Y; y < cam.Y+cam.ViewH; y++ {
		for x := cam.X; x < cam.X+cam.ViewW; x++ {
			if !tiles.InBounds(x, y) {
				continue
			}
			sx, sy := cam.WorldToScreen(x, y)
			tile := pathfind.Point{X: x, Y: y}
			switch {
			case tiles.IsWall(x, y):
				v.screen.SetContent(sx, sy, '#', nil, wallStyle)
			case !lvl.IsWalkable(tile):
				continue
			case view != nil && view.IsVisible(lvl.TileCenter(tile)):
				v.screen.SetContent(sx, sy, '.', nil, litStyle)
			default:
				v.screen.SetContent(sx, sy, '.', nil, floorStyle)
			}
		}
	}

	world := v.session.World
	for _, entity := range world.GetAllEntities() {
		posComp, hasPos := world.GetComponent(entity.ID, components.Position)
		renComp, hasRen := world.GetComponent(entity.ID, components.Renderable)
		if !hasPos || !hasRen {
			continue
		}
		pos := posComp.(*components.PositionComponent)
		if !cam.InView(pos.X, pos.Y) {
			continue
		}
		ren := renComp.(*components.RenderableComponent)

		r, g, b, _ := ren.Color.RGBA()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
		if agentComp, ok := world.GetComponent(entity.ID, components.Agent); ok && !agentComp.(*components.AgentComponent).Visible {
			style = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
		}

		sx, sy := cam.WorldToScreen(pos.X, pos.Y)
		v.screen.SetContent(sx, sy, ren.Glyph, nil, style)
	}

	region := "none"
	if ref, ok := v.session.Visibility.Current(); ok {
		region = ref.String()
	}
	tile := v.session.ObserverTile()
	status := fmt.Sprintf("seed %d  pos %d,%d  region %s  q quits", v.session.Seed, tile.X, tile.Y, region)
	v.printLine(cam.ViewH, status, tcell.StyleDefault)

	for i, msg := range v.log.RecentMessages(3) {
		c := msg.GetColor()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		v.printLine(cam.ViewH+1+i, msg.Text, style)
	}

	v.screen.Show()
}

func (v *TermViewer) printLine(y int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
