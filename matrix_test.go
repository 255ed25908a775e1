package lighthouse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVector(t *testing.T, want, got Vector) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, 1e-6), "want %v, got %v", want, got)
}

func TestRotate(t *testing.T) {
	m := Rotate(V(0, 1, 0), math.Pi/2)
	assertVector(t, V(0, 0, -1), m.MulPosition(V(1, 0, 0)))
	assertVector(t, V(1, 0, 0), m.MulPosition(V(0, 0, 1)))

	m = Rotate(V(0, 0, 2), math.Pi/2)
	assertVector(t, V(0, 1, 0), m.MulPosition(V(1, 0, 0)))
}

func TestEulerOrder(t *testing.T) {
	// Z is applied first, then X.
	m := Euler(V(math.Pi/2, 0, math.Pi/2))
	assertVector(t, V(0, 0, 1), m.MulDirection(V(1, 0, 0)))

	assert.Equal(t, Identity(), Euler(Vector{}))
}

func TestRotationBetween(t *testing.T) {
	m := RotationBetween(V(0, 1, 0), V(1, 0, 0))
	assertVector(t, V(1, 0, 0), m.MulDirection(V(0, 1, 0)))
}

func TestInverse(t *testing.T) {
	m := Translate(V(1, 2, 3)).Mul(Rotate(V(1, 1, 0), 0.7)).Mul(Scale(V(2, 3, 4)))
	id := m.Mul(m.Inverse())
	want := Identity().array()
	for i, x := range id.array() {
		assert.InDelta(t, want[i], x, eps)
	}
	assert.InDelta(t, 24.0, m.Determinant(), 1e-9)

	assert.Equal(t, Matrix{}, Scale(V(1, 0, 1)).Inverse())
}

func TestMulOrder(t *testing.T) {
	// Scale, then translate.
	m := Identity().Scale(V(2, 2, 2)).Translate(V(1, 0, 0))
	assertVector(t, V(3, 0, 0), m.MulPosition(V(1, 0, 0)))
}

func TestPerspectiveCenter(t *testing.T) {
	c := NewCamera(V(0, 0, 10), V(0, 0, 0), 45, 1, 0.1, 100)
	p := c.Matrix().MulPositionW(V(0, 0, 0))
	assert.InDelta(t, 0, p.X/p.W, eps)
	assert.InDelta(t, 0, p.Y/p.W, eps)
	assert.False(t, p.Outside())

	behind := c.Matrix().MulPositionW(V(0, 0, 20))
	assert.True(t, behind.Outside())
}

func TestScreen(t *testing.T) {
	s := Screen(100, 50)
	assertVector(t, V(0, 0, 0.5), s.MulPosition(V(-1, 1, 0)))
	assertVector(t, V(100, 50, 1), s.MulPosition(V(1, -1, 1)))
}

func TestCameraOrientation(t *testing.T) {
	c := NewCamera(V(10, 0, 0), V(0, 0, 0), 45, 1, 0.1, 100)
	// an object rotated by the orientation turns its +Z towards the camera
	assertVector(t, V(1, 0, 0), c.Orientation().MulDirection(V(0, 0, 1)))
	assertVector(t, V(0, 1, 0), c.Orientation().MulDirection(V(0, 1, 0)))

	c.Position = V(0, 5, 5)
	dir := c.Position.Sub(c.Target).Normalize()
	assertVector(t, dir, c.Orientation().MulDirection(V(0, 0, 1)))
}

func TestBox(t *testing.T) {
	b := Box{V(-1, -1, -1), V(1, 1, 1)}
	assert.Len(t, b.Corners(), 8)
	assertVector(t, V(0, 0, 0), b.Center())
	assert.True(t, b.Contains(V(1, 0, -1)))
	assert.False(t, b.Contains(V(1.1, 0, 0)))

	moved := b.Transform(Translate(V(5, 0, 0)))
	assertVector(t, V(4, -1, -1), moved.Min)
	assertVector(t, V(6, 1, 1), moved.Max)

	assert.Equal(t, b, EmptyBox.Extend(b))
	assert.Equal(t, EmptyBox, BoxForBoxes(nil))
}
