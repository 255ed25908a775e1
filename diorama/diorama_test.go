package diorama

import (
	"fmt"
	"math"
	"testing"

	"github.com/netisu/lighthouse"
	"github.com/netisu/lighthouse/tower"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func build(t *testing.T, mod func(*Options)) *Diorama {
	t.Helper()
	opts := DefaultOptions()
	if mod != nil {
		mod(&opts)
	}
	d, err := Build(opts)
	require.NoError(t, err)
	return d
}

func assertVector(t *testing.T, want, got lighthouse.Vector, delta float64) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, delta), "want %v, got %v", want, got)
}

func TestBuildDefault(t *testing.T) {
	d := build(t, nil)

	frame := d.Lighthouse.Find("frame")
	require.NotNil(t, frame)
	assert.Len(t, frame.Children, 80)
	assert.Equal(t, 4, d.Lattice.Count(tower.MainLeg))

	for _, name := range []string{"ocean", "ground", "central", "base", "platform", "lantern", "glass", "roof", "bulb", "beam", "star", "star-ring-outer", "star-ring-inner"} {
		assert.NotNil(t, d.Scene.Root.Find(name), name)
	}
	assert.NotNil(t, d.Scene.Root.Find("grass-39"))
	assert.Nil(t, d.Scene.Root.Find("grass-40"))
	assert.NotNil(t, d.Scene.Root.Find("rock-24"))
	assert.Nil(t, d.Scene.Root.Find("rock-25"))

	require.Len(t, d.Scene.Lights.Spot, 1)
	assert.Same(t, d.Spot, d.Scene.Lights.Spot[0])
	assertVector(t, lighthouse.V(0, 20.5, 0), d.Spot.Position, eps)
	assertVector(t, lighthouse.V(30, 15, 0), d.Spot.Target, eps)
	require.Len(t, d.Scene.Lights.Point, 1)
	assert.Equal(t, 15.0, d.Scene.Lights.Point[0].Distance)

	st := d.Scene.Stats()
	assert.Greater(t, st.Triangles, 5000)
	assert.InDelta(t, -50, st.Bounds.Min.X, 1e-6)
	assert.InDelta(t, 50, st.Bounds.Max.X, 1e-6)
}

func TestBuildSuperstructureHeights(t *testing.T) {
	d := build(t, nil)
	heights := map[string]float64{
		"central":  9,
		"base":     0.75,
		"platform": 18,
		"lantern":  18.8,
		"glass":    19.8,
		"roof":     21.7,
		"bulb":     20.5,
	}
	for name, y := range heights {
		o := d.Scene.Root.Find(name)
		require.NotNil(t, o, name)
		assert.InDelta(t, y, o.Position.Y, 1e-9, name)
	}
}

func TestBuildFollowsTowerHeight(t *testing.T) {
	d := build(t, func(o *Options) { o.Tower.Height = 24 })
	assert.InDelta(t, 24, d.Scene.Root.Find("platform").Position.Y, eps)
	assert.InDelta(t, 26.5, d.Spot.Position.Y, eps)
}

func TestBuildIsReproducible(t *testing.T) {
	a := build(t, nil)
	b := build(t, nil)
	c := build(t, func(o *Options) { o.Seed = 99 })

	for _, name := range []string{"rock-0", "rock-13", "grass-7"} {
		pa := a.Scene.Root.Find(name).Position
		pb := b.Scene.Root.Find(name).Position
		pc := c.Scene.Root.Find(name).Position
		assert.Equal(t, pa, pb, name)
		assert.NotEqual(t, pa, pc, name)
	}
}

func TestScatterStaysOnIsland(t *testing.T) {
	d := build(t, nil)
	for i := 0; i < 25; i++ {
		p := d.Scene.Root.Find(fmt.Sprintf("rock-%d", i)).Position
		r := math.Hypot(p.X, p.Z)
		assert.GreaterOrEqual(t, r, 6.0-eps)
		assert.LessOrEqual(t, r, 11.0+eps)
		assert.InDelta(t, 0.09, p.Y, 0.18)
	}
	for i := 0; i < 40; i++ {
		p := d.Scene.Root.Find(fmt.Sprintf("grass-%d", i)).Position
		r := math.Hypot(p.X, p.Z)
		assert.GreaterOrEqual(t, r, 4.0-eps)
		assert.LessOrEqual(t, r, 10.0+eps)
		assert.Equal(t, 0.08, p.Y)
	}
}

func TestBuildCustomCounts(t *testing.T) {
	d := build(t, func(o *Options) {
		o.GrassPatches = 0
		o.Rocks = 3
	})
	assert.Nil(t, d.Scene.Root.Find("grass-0"))
	assert.NotNil(t, d.Scene.Root.Find("rock-2"))
	assert.Nil(t, d.Scene.Root.Find("rock-3"))
}

func TestBuildRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Tower.TierCount = 0
	_, err := Build(opts)
	assert.True(t, errors.Is(err, tower.ErrInvalidSpec))

	opts = DefaultOptions()
	opts.Rocks = -1
	_, err = Build(opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.FogDensity = -0.1
	_, err = Build(opts)
	assert.Error(t, err)
}

func TestStarPoints(t *testing.T) {
	pts := StarPoints(8, 12, 5)
	require.Len(t, pts, 16)
	assertVector(t, lighthouse.V(0, -12, 0), pts[0], 1e-9)
	for i, p := range pts {
		want := 12.0
		if i%2 == 1 {
			want = 5
		}
		assert.InDelta(t, want, p.Length(), 1e-9, "point %d", i)
	}
}

func TestBeamConeStartsAlongZ(t *testing.T) {
	d := build(t, nil)
	cone := d.Scene.Root.Find("beam")
	world := cone.WorldMatrix()
	assertVector(t, lighthouse.V(0, 20.5, 0), world.MulPosition(lighthouse.V(0, beamLength/2, 0)), 1e-9)
	assertVector(t, lighthouse.V(0, 20.5, 50), world.MulPosition(lighthouse.V(0, -beamLength/2, 0)), 1e-9)
}

func TestOceanLiesFlatInXZ(t *testing.T) {
	d := build(t, nil)
	box := d.Ocean.BoundingBox()
	assert.InDelta(t, 100, box.Size().X, 1e-6)
	assert.InDelta(t, 100, box.Size().Z, 1e-6)
	assert.LessOrEqual(t, box.Size().Y, 0.6+eps)
}
