// Package termview draws the animated diorama in a true-color terminal. Each
// cell shows two pixels stacked with the upper half block glyph.
package termview

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/netisu/lighthouse"
	"github.com/netisu/lighthouse/diorama"
	"github.com/pkg/errors"
)

const halfBlock = '▀'

type Viewer struct {
	screen tcell.Screen
	d      *diorama.Diorama
	state  diorama.RenderState
	orbit  *diorama.Orbit
	reload *diorama.Reloader
	fps    int
}

// New opens the terminal. Call Close when done.
func New(d *diorama.Diorama, fps int) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	return NewWithScreen(screen, d, fps), nil
}

// NewWithScreen uses an already initialized screen.
func NewWithScreen(screen tcell.Screen, d *diorama.Diorama, fps int) *Viewer {
	screen.EnableMouse()
	screen.HideCursor()
	w, h := screen.Size()
	if fps < 1 {
		fps = 30
	}
	return &Viewer{
		screen: screen,
		d:      d,
		orbit:  diorama.NewOrbit(w, h*2),
		reload: diorama.NewReloader(),
		fps:    fps,
	}
}

func (v *Viewer) Close() {
	v.screen.Fini()
}

func (v *Viewer) Orbit() *diorama.Orbit {
	return v.orbit
}

func (v *Viewer) State() diorama.RenderState {
	return v.state
}

// Reload asks the viewer to rebuild the diorama before its next frame.
func (v *Viewer) Reload(opts diorama.Options) {
	v.reload.Request(opts)
}

// HandleEvent feeds one terminal event to the camera. It reports false when
// the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		y *= 2
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.Button1 != 0 && !v.orbit.Dragging():
			v.orbit.MouseDown(x, y)
		case buttons&tcell.Button1 != 0:
			v.orbit.MouseMove(x, y)
		case v.orbit.Dragging():
			v.orbit.MouseUp()
		}
		if buttons&tcell.WheelUp != 0 {
			v.orbit.Wheel(-1)
		}
		if buttons&tcell.WheelDown != 0 {
			v.orbit.Wheel(1)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		v.orbit.Resize(w, h*2)
		v.screen.Sync()
	}
	return true
}

// Draw renders one animation tick to the screen.
func (v *Viewer) Draw() error {
	v.d = v.reload.Next(v.d)
	if v.orbit.Width < 1 || v.orbit.Height < 2 {
		return nil
	}
	im, err := diorama.Frame(v.d, &v.state, v.orbit, 1)
	if err != nil {
		return errors.Wrap(err, "render frame")
	}
	v.blit(im)
	v.screen.Show()
	return nil
}

func (v *Viewer) blit(im image.Image) {
	b := im.Bounds()
	for cy := 0; cy*2 < b.Dy(); cy++ {
		for x := 0; x < b.Dx(); x++ {
			top := cellColor(im.At(b.Min.X+x, b.Min.Y+cy*2))
			bottom := top
			if cy*2+1 < b.Dy() {
				bottom = cellColor(im.At(b.Min.X+x, b.Min.Y+cy*2+1))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
}

func cellColor(c color.Color) tcell.Color {
	n := lighthouse.MakeColor(c).NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// Run draws at the viewer's frame rate and handles input until the user
// quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	if err := v.Draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := v.Draw(); err != nil {
				return err
			}
		}
	}
}
