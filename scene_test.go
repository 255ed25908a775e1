package lighthouse

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redSquareScene() *Scene {
	s := NewScene(NewCamera(V(0, 0, 5), Vector{}, 45, 1, 0.1, 100))
	s.Add(NewObjectFromMesh("square", NewPlane(2, 2, 1, 1), NewBasicMaterial("red", Hex(0xff0000))))
	return s
}

func TestRender(t *testing.T) {
	s := redSquareScene()
	im, err := s.Render(20, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, im.Bounds().Dx())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, im.At(10, 10))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, im.At(0, 0))
}

func TestRenderSupersample(t *testing.T) {
	s := redSquareScene()
	im, err := s.Render(30, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, 30, im.Bounds().Dx())
	assert.Equal(t, 20, im.Bounds().Dy())
	assert.InDelta(t, 1.5, s.Camera.Aspect, eps)

	r, g, _, _ := im.At(15, 10).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
}

func TestRenderErrors(t *testing.T) {
	s := redSquareScene()
	_, err := s.Render(0, 10, 1)
	assert.Error(t, err)

	s.Shading = "sketch"
	_, err = s.Render(10, 10, 1)
	assert.Error(t, err)
}

func TestRenderDepth(t *testing.T) {
	s := redSquareScene()
	// nearer blue square hides the red one
	near := NewObjectFromMesh("near", NewPlane(1, 1, 1, 1), NewBasicMaterial("blue", Hex(0x0000ff)))
	near.SetPosition(0, 0, 1)
	s.Add(near)
	im, err := s.Render(20, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, im.At(10, 10))
}

func TestRenderTranslucentBlend(t *testing.T) {
	s := redSquareScene()
	glass := NewObjectFromMesh("glass", NewPlane(1, 1, 1, 1), &Material{Name: "glass", Color: White, Opacity: 0.5, Unlit: true})
	glass.SetPosition(0, 0, 1)
	s.Add(glass)
	im, err := s.Render(20, 20, 1)
	require.NoError(t, err)
	c := im.At(10, 10).(color.NRGBA)
	assert.Equal(t, uint8(255), c.R)
	assert.InDelta(t, 128, int(c.G), 1)
}

func TestRenderWireframe(t *testing.T) {
	s := redSquareScene()
	s.Wireframe = true
	im, err := s.Render(20, 20, 1)
	require.NoError(t, err)
	// the square spans pixels 5.2 to 14.8; only its outline and diagonal are drawn
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, im.At(5, 10))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, im.At(8, 12))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, im.At(8, 8))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, im.At(0, 0))
}

func TestRenderCullsSingleSidedBackFaces(t *testing.T) {
	s := redSquareScene()
	square := s.Root.Find("square")
	square.SetEuler(0, math.Pi, 0)
	im, err := s.Render(20, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, im.At(10, 10))

	square.Material.DoubleSided = true
	im, err = s.Render(20, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, im.At(10, 10))
}

func TestDrawList(t *testing.T) {
	s := NewScene(NewCamera(Vector{}, V(0, 0, -1), 45, 1, 0.1, 100))
	glass := &Material{Name: "glass", Color: White, Opacity: 0.5}
	mesh := NewPlane(1, 1, 1, 1)

	opaque := NewObjectFromMesh("opaque", mesh, nil)
	far := NewObjectFromMesh("far", mesh, glass)
	far.SetPosition(0, 0, -10)
	near := NewObjectFromMesh("near", mesh, glass)
	near.SetPosition(0, 0, -2)
	first := NewObjectFromMesh("first", mesh, glass)
	first.SetPosition(0, 0, -1)
	first.RenderOrder = -1
	hidden := NewObjectFromMesh("hidden", mesh, nil)
	hidden.Hidden = true

	s.Add(near, first, far, opaque, hidden)
	var names []string
	for _, item := range s.drawList() {
		names = append(names, item.object.Name)
	}
	assert.Equal(t, []string{"opaque", "first", "far", "near"}, names)
}

func TestStats(t *testing.T) {
	s := redSquareScene()
	group := NewEmptyObject("group")
	group.Add(NewObjectFromMesh("cube", NewCylinder(1, 1, 1, 4, false), nil))
	hidden := NewObjectFromMesh("hidden", NewPlane(1, 1, 1, 1), nil)
	hidden.Hidden = true
	group.Add(hidden)
	group.SetPosition(0, 10, 0)
	s.Add(group)

	st := s.Stats()
	assert.Equal(t, 4, st.Objects)
	assert.Equal(t, 2, st.Meshes)
	assert.Equal(t, 2+16, st.Triangles)
	assert.InDelta(t, 10.5, st.Bounds.Max.Y, eps)
	assert.InDelta(t, -1, st.Bounds.Min.Y, eps)
}

func TestFitCamera(t *testing.T) {
	s := redSquareScene()
	s.Camera.Fovy = 120
	s.FitCamera()
	// the square spans atan(1/5) either side of the view axis
	assert.InDelta(t, 22.6198649*1.05, s.Camera.Fovy, 1e-3)

	empty := NewScene(NewCamera(V(0, 0, 5), Vector{}, 60, 1, 0.1, 100))
	empty.FitCamera()
	assert.Equal(t, 60.0, empty.Camera.Fovy)
}

func TestDraw(t *testing.T) {
	s := redSquareScene()
	var buf bytes.Buffer
	require.NoError(t, s.DrawToWriter(&buf, 8, 8, 1))
	im, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, im.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.Draw(path, 8, 8, 2))
	assert.FileExists(t, path)

	assert.Error(t, s.Draw(filepath.Join(t.TempDir(), "missing", "frame.png"), 8, 8, 1))
}
