package lighthouse

import (
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Scene is everything needed to draw a frame: the object graph, camera,
// lights and atmosphere.
type Scene struct {
	Root       *Object
	Camera     *Camera
	Lights     *Lights
	Fog        *Fog
	Background Color
	// Shading names the lit shader, see NewShader.
	Shading string
	// Wireframe draws triangle edges instead of filled faces.
	Wireframe bool
}

// NewScene returns an empty scene
func NewScene(camera *Camera) *Scene {
	return &Scene{
		Root:       NewEmptyObject("scene"),
		Camera:     camera,
		Lights:     &Lights{},
		Background: Black,
	}
}

// Add adds objects to the root of the scene
func (s *Scene) Add(objects ...*Object) {
	s.Root.Add(objects...)
}

// FitCamera widens or narrows the camera's field of view so every mesh in
// the scene is in frame, with 5% padding.
func (s *Scene) FitCamera() {
	box := s.Root.BoundingBox()
	if box == EmptyBox {
		return
	}
	viewMatrix := s.Camera.View()

	var maxAngleX, maxAngleY float64
	for _, corner := range box.Corners() {
		p := viewMatrix.MulPosition(corner)

		// The camera looks down the negative Z-axis in view space.
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}
		maxAngleX = math.Max(maxAngleX, math.Atan(math.Abs(p.X)/absZ))
		maxAngleY = math.Max(maxAngleY, math.Atan(math.Abs(p.Y)/absZ))
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/s.Camera.Aspect)
	fovy := math.Max(fovyFromX, fovyFromY) * (180 / math.Pi) * 1.05
	s.Camera.Fovy = math.Min(fovy, 170)
}

type drawItem struct {
	object   *Object
	world    Matrix
	distance float64
}

// drawList returns opaque objects followed by transparent ones, the latter
// by render order and then back to front.
func (s *Scene) drawList() []drawItem {
	var opaque, transparent []drawItem
	s.Root.Walk(func(o *Object, world Matrix) {
		if o.Mesh == nil {
			return
		}
		item := drawItem{o, world, world.MulPosition(Vector{}).Distance(s.Camera.Position)}
		if materialOf(o).Transparent() {
			transparent = append(transparent, item)
		} else {
			opaque = append(opaque, item)
		}
	})
	sort.SliceStable(transparent, func(i, j int) bool {
		a, b := transparent[i], transparent[j]
		if a.object.RenderOrder != b.object.RenderOrder {
			return a.object.RenderOrder < b.object.RenderOrder
		}
		return a.distance > b.distance
	})
	return append(opaque, transparent...)
}

// Render draws the scene at width x height. With supersample > 1 the frame is
// drawn that many times larger and filtered down.
func (s *Scene) Render(width, height, supersample int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("render size %dx%d", width, height)
	}
	if supersample < 1 {
		supersample = 1
	}
	s.Camera.Aspect = float64(width) / float64(height)

	lit, err := NewShader(s.Shading, s.Camera, s.Lights, s.Fog)
	if err != nil {
		return nil, err
	}
	basic := NewSolidColorShader(s.Camera, s.Fog)

	dc := NewContext(width*supersample, height*supersample, lit)
	dc.ClearColor = s.Background
	dc.Wireframe = s.Wireframe
	dc.ClearColorBuffer()

	for _, item := range s.drawList() {
		if materialOf(item.object).Unlit {
			dc.Shader = basic
		} else {
			dc.Shader = lit
		}
		dc.DrawObject(item.object, item.world)
	}

	if supersample == 1 {
		return dc.Image(), nil
	}
	return resize.Resize(uint(width), uint(height), dc.Image(), resize.Bilinear), nil
}

// DrawToWriter renders the scene and encodes it as PNG.
func (s *Scene) DrawToWriter(writer io.Writer, width, height, supersample int) error {
	im, err := s.Render(width, height, supersample)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(writer, im), "encode png")
}

// Draw renders the scene to a PNG file.
func (s *Scene) Draw(path string, width, height, supersample int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create frame")
	}
	defer file.Close()

	if err := s.DrawToWriter(file, width, height, supersample); err != nil {
		slog.Error("could not draw scene", "path", path, "err", err)
		return err
	}
	return file.Close()
}

// Stats counts what a frame of the scene would draw.
type Stats struct {
	Objects   int
	Meshes    int
	Triangles int
	Bounds    Box
}

func (s *Scene) Stats() Stats {
	var st Stats
	s.Root.Walk(func(o *Object, _ Matrix) {
		st.Objects++
		if o.Mesh != nil {
			st.Meshes++
			st.Triangles += len(o.Mesh.Triangles)
		}
	})
	st.Bounds = s.Root.BoundingBox()
	return st
}
