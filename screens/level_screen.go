package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/pathfind"
	"ebiten-delve/sim"
	"ebiten-delve/spawners"
	"ebiten-delve/systems"
)

var (
	wallColor  = color.RGBA{110, 110, 120, 255}
	floorColor = color.RGBA{30, 30, 38, 255}
	fanColor   = color.RGBA{255, 240, 160, 50}
	routeColor = color.RGBA{100, 149, 237, 200}
)

// LevelScreen shows a running session: tiles, the observer's visibility fan,
// agents and their routes
type LevelScreen struct {
	*BaseScreen
	session  *sim.Session
	log      *systems.MessageLog
	overlay  *ScreenStack
	whiteImg *ebiten.Image

	// Map of keys to movement directions
	movementKeys map[ebiten.Key]int

	showFan    bool
	showRoutes bool
	exitShown  bool
}

// NewLevelScreen creates a screen over session
func NewLevelScreen(session *sim.Session, log *systems.MessageLog) *LevelScreen {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &LevelScreen{
		BaseScreen: NewBaseScreen(),
		session:    session,
		log:        log,
		overlay:    NewScreenStack(),
		whiteImg:   whiteImg,
		movementKeys: map[ebiten.Key]int{
			// Arrow keys
			ebiten.KeyArrowUp:    systems.DirUp,
			ebiten.KeyArrowDown:  systems.DirDown,
			ebiten.KeyArrowLeft:  systems.DirLeft,
			ebiten.KeyArrowRight: systems.DirRight,

			// Vi keys (hjkl)
			ebiten.KeyH: systems.DirLeft,
			ebiten.KeyJ: systems.DirDown,
			ebiten.KeyK: systems.DirUp,
			ebiten.KeyL: systems.DirRight,
			ebiten.KeyY: systems.DirUpLeft,
			ebiten.KeyU: systems.DirUpRight,
			ebiten.KeyB: systems.DirDownLeft,
			ebiten.KeyN: systems.DirDownRight,
		},
		showFan:    true,
		showRoutes: true,
	}
}

// Update handles input and advances the session
func (s *LevelScreen) Update() error {
	// Toggle debug message window with F1 key
	if s.overlay.Len() == 0 && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.overlay.Push(NewDebugScreen(s.log))
		return nil
	}
	if s.overlay.Len() == 0 && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.overlay.Push(NewModalScreen("LEVEL", s.session.Summary()))
		return nil
	}

	// A modal holds the simulation until it closes
	if s.overlay.Len() > 0 {
		return s.overlay.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		s.showFan = !s.showFan
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.showRoutes = !s.showRoutes
	}

	for key, dir := range s.movementKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.session.Move(dir)
		}
	}

	s.session.Step(1.0 / float64(ebiten.TPS()))

	if s.session.AtExit() && !s.exitShown {
		s.exitShown = true
		s.log.Add("INFO: exit reached")
		s.overlay.Push(NewModalScreen("EXIT REACHED", []string{"Press Escape in the level to return to the menu."}))
	}

	return nil
}

// Draw draws the level and any open modal
func (s *LevelScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cam := s.session.Camera
	ts := float32(config.TileSize)
	offX := -float32(cam.X) * ts
	offY := -float32(cam.Y) * ts

	s.drawTiles(screen, offX, offY)
	if s.showFan {
		s.drawFan(screen, offX, offY)
	}
	s.drawEntities(screen, offX, offY)

	region := "none"
	if ref, ok := s.session.Visibility.Current(); ok {
		region = ref.String()
	}
	tile := s.session.ObserverTile()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d  pos %d,%d  region %s  FPS %.0f\nF1 log  Tab summary  V fan  R routes  Esc menu",
		s.session.Seed, tile.X, tile.Y, region, ebiten.ActualFPS()))

	s.overlay.Draw(screen)
}

// drawTiles draws walls and the floor of rooms and corridors inside the camera view
func (s *LevelScreen) drawTiles(screen *ebiten.Image, offX, offY float32) {
	cam := s.session.Camera
	lvl := s.session.Level
	tiles := lvl.Tiles()
	ts := float32(config.TileSize)

	for y := cam.Y; y < cam.Y+cam.ViewH; y++ {
		for x := cam.X; x < cam.X+cam.ViewW; x++ {
			if !tiles.InBounds(x, y) {
				continue
			}
			clr := floorColor
			if tiles.IsWall(x, y) {
				clr = wallColor
			} else if !lvl.IsWalkable(pathfind.Point{X: x, Y: y}) {
				continue
			}
			vector.DrawFilledRect(screen, float32(x)*ts+offX, float32(y)*ts+offY, ts-1, ts-1, clr, false)
		}
	}
}

// drawFan fills the observer's visibility triangles
func (s *LevelScreen) drawFan(screen *ebiten.Image, offX, offY float32) {
	view := s.session.View()
	if view == nil {
		return
	}

	var path vector.Path
	for _, tri := range view.Triangles() {
		path.MoveTo(float32(tri.A.X)+offX, float32(tri.A.Y)+offY)
		path.LineTo(float32(tri.B.X)+offX, float32(tri.B.Y)+offY)
		path.LineTo(float32(tri.C.X)+offX, float32(tri.C.Y)+offY)
		path.Close()
	}

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(fanColor.R) / 255
		vertices[i].ColorG = float32(fanColor.G) / 255
		vertices[i].ColorB = float32(fanColor.B) / 255
		vertices[i].ColorA = float32(fanColor.A) / 255
	}
	screen.DrawTriangles(vertices, indices, s.whiteImg, &ebiten.DrawTrianglesOptions{})
}

// drawEntities draws the exit, agents with their routes, and the observer last
func (s *LevelScreen) drawEntities(screen *ebiten.Image, offX, offY float32) {
	world := s.session.World
	ts := float32(config.TileSize)

	for _, entity := range world.GetAllEntities() {
		posComp, hasPos := world.GetComponent(entity.ID, components.Position)
		renComp, hasRen := world.GetComponent(entity.ID, components.Renderable)
		if !hasPos || !hasRen || entity.ID == s.session.Observer {
			continue
		}
		pos := posComp.(*components.PositionComponent)
		ren := renComp.(*components.RenderableComponent)
		if !s.session.Camera.InView(pos.X, pos.Y) {
			continue
		}

		cx := float32(pos.X)*ts + ts/2 + offX
		cy := float32(pos.Y)*ts + ts/2 + offY

		if entity.HasTag(spawners.TagExit) {
			vector.StrokeRect(screen, cx-ts/3, cy-ts/3, ts*2/3, ts*2/3, 2, ren.Color, false)
			continue
		}

		agentComp, isAgent := world.GetComponent(entity.ID, components.Agent)
		if !isAgent {
			continue
		}
		agent := agentComp.(*components.AgentComponent)

		if s.showRoutes && agent.Route != nil {
			prevX, prevY := cx, cy
			for _, p := range agent.Route.Waypoints() {
				x := float32(p.X)*ts + ts/2 + offX
				y := float32(p.Y)*ts + ts/2 + offY
				vector.StrokeLine(screen, prevX, prevY, x, y, 2, routeColor, false)
				prevX, prevY = x, y
			}
		}

		clr := ren.Color
		if !agent.Visible {
			clr = color.RGBA{70, 70, 70, 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, ts/3, clr, false)
		drawColoredText(screen, string(ren.Glyph), int(cx)-3, int(cy)-8, color.Black)
	}

	tile := s.session.ObserverTile()
	cx := float32(tile.X)*ts + ts/2 + offX
	cy := float32(tile.Y)*ts + ts/2 + offY
	vector.DrawFilledCircle(screen, cx, cy, ts/3, color.White, false)
}
