package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"driftfield/field"
)

const (
	initialWidth  = 1280
	initialHeight = 720
	windowTitle   = "Driftfield"
)

// screenCanvas adapts an ebiten image to the field's Canvas interface.
type screenCanvas struct {
	dst *ebiten.Image
}

func (s screenCanvas) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s screenCanvas) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s screenCanvas) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// Game drives the field from ebiten's frame loop.
type Game struct {
	field   *field.Field
	width   int
	height  int
	frames  int
	lastFPS time.Time
}

// Update polls the pointer and keyboard; the simulation itself runs in
// Draw, where the screen is available.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.field.ShowConnections = !g.field.ShowConnections
	}

	// The cursor position keeps reporting after the cursor leaves the
	// window; out-of-bounds coordinates mean the pointer is gone.
	mx, my := ebiten.CursorPosition()
	if mx >= 0 && mx <= g.width && my >= 0 && my <= g.height {
		g.field.SetPointer(float64(mx), float64(my))
	} else {
		g.field.ClearPointer()
	}

	// FPS counter in the window title, once a second.
	g.frames++
	if now := time.Now(); now.Sub(g.lastFPS).Seconds() >= 1.0 {
		ebiten.SetWindowTitle(fmt.Sprintf("%s - FPS: %d", windowTitle, g.frames))
		g.frames = 0
		g.lastFPS = now
	}

	return nil
}

// Draw runs one simulation step onto the screen and overlays the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Step(screenCanvas{dst: screen})

	hud := fmt.Sprintf("particles: %d", g.field.Count())
	if g.field.ShowConnections {
		hud += "  [C] connections: on"
	} else {
		hud += "  [C] connections: off"
	}
	text.Draw(screen, hud, basicfont.Face7x13, 10, 20, color.NRGBA{R: 180, G: 190, B: 210, A: 255})
}

// Layout tracks the window size so the logical surface, and with it the
// particle count, follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.field.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	game := &Game{
		field:   field.New(field.DefaultConfig(), initialWidth, initialHeight, rng),
		width:   initialWidth,
		height:  initialHeight,
		lastFPS: time.Now(),
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
