package tetra

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens the interactive window. It blocks until the window closes
// or the user quits.
func RunWindow(r *Renderer, state FrameState) error {
	g := &game{r: r, state: state, start: time.Now()}
	ebiten.SetWindowTitle("Sierpinski Tetrahedron - Ray Marching")
	ebiten.SetWindowSize(r.Width*2, r.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// game is the ebiten driver: Update applies discrete input deltas to
// FrameState, Draw runs one full rendering pass and presents it. Layout
// pins the internal resolution so ebiten scales it to the window.
type game struct {
	r     *Renderer
	state FrameState
	start time.Time

	img       *ebiten.Image
	lastTitle time.Time
	shots     int
	shoot     bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.NextPalette()
		DebugLog("palette=%d", g.state.Palette)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.state.Pan(0, PanStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.state.Pan(0, -PanStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.state.Pan(-PanStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.state.Pan(PanStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.state.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.state.ZoomOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.state.ToggleVariant()
		DebugLog("variant=%s", g.state.Variant)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.shoot = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t := Real(time.Since(g.start).Seconds())
	f := g.r.Render(g.state, t)

	if g.img == nil {
		g.img = ebiten.NewImage(f.Width, f.Height)
	}
	g.img.WritePixels(f.Pix)
	screen.DrawImage(g.img, nil)

	if g.shoot {
		g.shoot = false
		name := fmt.Sprintf("shot_%03d.png", g.shots)
		g.shots++
		if err := SaveFramePNG16(f, name); err != nil {
			fmt.Printf("screenshot failed: %v\n", err)
		} else {
			fmt.Printf("saved %s\n", name)
		}
	}

	if time.Since(g.lastTitle) >= time.Second {
		g.lastTitle = time.Now()
		ebiten.SetWindowTitle(fmt.Sprintf(
			"Sierpinski Tetrahedron - Ray Marching | %s | FPS: %.1f | Palette: %d | Zoom: %.1f",
			g.state.Variant, ebiten.ActualFPS(), g.state.Palette, g.state.Zoom))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.r.Width, g.r.Height
}
