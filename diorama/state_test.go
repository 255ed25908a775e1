package diorama

import (
	"math"
	"testing"

	"github.com/netisu/lighthouse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	var s RenderState
	for i := 0; i < 3; i++ {
		s.Advance()
	}
	assert.Equal(t, 3, s.Tick)
	assert.InDelta(t, 0.06, s.WavePhase, eps)
	assert.InDelta(t, 0.045, s.BeamAngle, eps)
}

func TestApplyMovesSpotAndBeam(t *testing.T) {
	d := build(t, nil)
	s := RenderState{BeamAngle: math.Pi / 2}
	s.Apply(d, d.Scene.Camera)

	assertVector(t, lighthouse.V(0, 15, 30), d.Spot.Target, 1e-9)

	world := d.Scene.Root.Find("beam").WorldMatrix()
	assertVector(t, lighthouse.V(0, 20.5, 0), world.MulPosition(lighthouse.V(0, beamLength/2, 0)), 1e-9)
	assertVector(t, lighthouse.V(50, 20.5, 0), world.MulPosition(lighthouse.V(0, -beamLength/2, 0)), 1e-9)
}

func TestApplyWavesOcean(t *testing.T) {
	d := build(t, nil)
	s := RenderState{WavePhase: 1.3}
	s.Apply(d, nil)

	for _, tri := range d.Ocean.Mesh.Triangles[:200] {
		for _, v := range []lighthouse.Vertex{tri.V1, tri.V2, tri.V3} {
			assert.InDelta(t, oceanHeight(v.Position.X, v.Position.Y, 1.3), v.Position.Z, eps)
		}
		n := tri.Normal()
		assertVector(t, n, tri.V1.Normal, 1e-9)
		assertVector(t, n, tri.V3.Normal, 1e-9)
	}

	// heights are a pure function of the phase
	again := build(t, nil)
	s.Apply(again, nil)
	assert.Equal(t, d.Ocean.Mesh.Triangles[42].V2.Position, again.Ocean.Mesh.Triangles[42].V2.Position)
}

func TestApplyIsDeterministicAcrossRuns(t *testing.T) {
	a := build(t, nil)
	b := build(t, nil)
	var sa, sb RenderState
	for i := 0; i < 10; i++ {
		sa.Advance()
		sa.Apply(a, a.Scene.Camera)
	}
	for i := 0; i < 10; i++ {
		sb.Advance()
	}
	sb.Apply(b, b.Scene.Camera)

	assert.Equal(t, sa, sb)
	assertVector(t, a.Spot.Target, b.Spot.Target, 1e-12)
	assert.Equal(t, a.Ocean.Mesh.Triangles[7].V1.Position, b.Ocean.Mesh.Triangles[7].V1.Position)
}

func TestStarFacesCamera(t *testing.T) {
	d := build(t, nil)
	cam := d.Scene.Camera
	var s RenderState
	s.Apply(d, cam)

	facing := d.Star.Rotation.MulDirection(lighthouse.V(0, 0, 1))
	want := cam.Position.Sub(cam.Target).Normalize()
	assertVector(t, want, facing, 1e-9)
	up := d.Star.Rotation.MulDirection(lighthouse.V(0, 1, 0))
	assert.Greater(t, up.Y, 0.0)
}

func TestStarStaysPutWhenDisabled(t *testing.T) {
	d := build(t, func(o *Options) { o.StarFacesCamera = false })
	var s RenderState
	s.Apply(d, d.Scene.Camera)
	assert.Equal(t, lighthouse.Identity(), d.Star.Rotation)
}

func TestFrame(t *testing.T) {
	d := build(t, nil)
	var s RenderState
	o := NewOrbit(48, 32)

	im, err := Frame(d, &s, o, 1)
	require.NoError(t, err)
	assert.Equal(t, 48, im.Bounds().Dx())
	assert.Equal(t, 32, im.Bounds().Dy())
	assert.Equal(t, 1, s.Tick)
	assert.InDelta(t, 1.5, d.Scene.Camera.Aspect, eps)
	assertVector(t, o.Position(), d.Scene.Camera.Position, 1e-9)

	// the sky shows in the top right corner, away from the beam
	r, g, b, _ := im.At(47, 0).RGBA()
	sky := lighthouse.Hex(0x87CEEB).NRGBA()
	assert.InDelta(t, int(sky.R), int(r>>8), 1)
	assert.InDelta(t, int(sky.G), int(g>>8), 1)
	assert.InDelta(t, int(sky.B), int(b>>8), 1)
}
