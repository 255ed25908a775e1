// Package window shows the animated diorama in a desktop window.
package window

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/netisu/lighthouse/diorama"
	"github.com/pkg/errors"
)

// Game drives the diorama from ebiten's update loop. Dragging with the left
// button orbits, the wheel zooms and Esc quits.
type Game struct {
	d     *diorama.Diorama
	state diorama.RenderState
	orbit *diorama.Orbit

	// Scale is the size of one rendered pixel in window pixels.
	Scale       int
	Supersample int

	reload *diorama.Reloader
	frame  *image.RGBA
	img    *ebiten.Image
}

func New(d *diorama.Diorama, width, height int) *Game {
	return &Game{
		d:           d,
		orbit:       diorama.NewOrbit(width, height),
		Scale:       1,
		Supersample: 1,
		reload:      diorama.NewReloader(),
	}
}

// Reload asks the game to rebuild the diorama with opts on its next update.
// It is safe to call from any goroutine.
func (g *Game) Reload(opts diorama.Options) {
	g.reload.Request(opts)
}

func (g *Game) scale() int {
	return max(g.Scale, 1)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.d = g.reload.Next(g.d)

	x, y := ebiten.CursorPosition()
	x, y = x*g.scale(), y*g.scale()
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.orbit.Dragging():
		g.orbit.MouseDown(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.orbit.MouseMove(x, y)
	case g.orbit.Dragging():
		g.orbit.MouseUp()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		// ebiten reports scrolling up as positive
		g.orbit.Wheel(-dy)
	}

	im, err := diorama.Frame(g.d, &g.state, g.orbit, g.Supersample)
	if err != nil {
		return errors.Wrap(err, "render frame")
	}
	b := im.Bounds()
	if g.frame == nil || g.frame.Bounds() != b {
		g.frame = image.NewRGBA(b)
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	draw.Draw(g.frame, b, im, b.Min, draw.Src)
	g.img.WritePixels(g.frame.Pix)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.scale(), 1)
	h := max(outsideHeight/g.scale(), 1)
	g.orbit.Resize(w, h)
	return w, h
}

// Run opens a resizable window and blocks until it is closed.
func Run(g *Game, title string, fps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.orbit.Width*g.scale(), g.orbit.Height*g.scale())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
