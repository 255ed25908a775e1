package tower

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRoundTrip(t *testing.T) {
	beams, err := Generate(DefaultSpec())
	require.NoError(t, err)

	for i, b := range beams {
		p, ok := Place(b)
		require.True(t, ok, "beam %d", i)
		assert.InDelta(t, b.Length(), p.Length, 1e-9)
		assert.Equal(t, b.Thickness/2, p.Radius)

		a, c := p.Endpoints()
		assert.True(t, a.ApproxEqualThreshold(b.A, 1e-6), "beam %d (%s): %v != %v", i, b.Kind, a, b.A)
		assert.True(t, c.ApproxEqualThreshold(b.B, 1e-6), "beam %d (%s): %v != %v", i, b.Kind, c, b.B)
	}
}

func TestPlaceAxisAligned(t *testing.T) {
	up := BeamSpec{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{0, 4, 0}, Thickness: 0.2}
	p, ok := Place(up)
	require.True(t, ok)
	assert.True(t, p.Rotation.ApproxEqual(mgl64.QuatIdent()))
	assert.True(t, p.Midpoint.ApproxEqual(mgl64.Vec3{0, 2, 0}))

	// straight down needs a half turn, the ambiguous case of the rotation
	down := BeamSpec{A: mgl64.Vec3{1, 4, 1}, B: mgl64.Vec3{1, 0, 1}, Thickness: 0.2}
	p, ok = Place(down)
	require.True(t, ok)
	a, b := p.Endpoints()
	assert.True(t, a.ApproxEqualThreshold(down.A, 1e-9))
	assert.True(t, b.ApproxEqualThreshold(down.B, 1e-9))
}

func TestPlaceTransform(t *testing.T) {
	beam := BeamSpec{A: mgl64.Vec3{1, 0, -2}, B: mgl64.Vec3{3, 5, 2}, Thickness: 0.3}
	p, ok := Place(beam)
	require.True(t, ok)

	m := p.Transform()
	top := m.Mul4x1(mgl64.Vec4{0, p.Length / 2, 0, 1}).Vec3()
	bottom := m.Mul4x1(mgl64.Vec4{0, -p.Length / 2, 0, 1}).Vec3()
	assert.True(t, top.ApproxEqualThreshold(beam.B, 1e-9))
	assert.True(t, bottom.ApproxEqualThreshold(beam.A, 1e-9))
}

func TestPlaceDegenerate(t *testing.T) {
	p := mgl64.Vec3{2, 2, 2}
	_, ok := Place(BeamSpec{A: p, B: p, Thickness: 0.1})
	assert.False(t, ok)

	_, ok = Place(BeamSpec{A: p, B: mgl64.Vec3{math.NaN(), 0, 0}, Thickness: 0.1})
	assert.False(t, ok)
	_, ok = Place(BeamSpec{A: p, B: mgl64.Vec3{0, math.Inf(1), 0}, Thickness: 0.1})
	assert.False(t, ok)
}
