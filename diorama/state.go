package diorama

import (
	"math"

	"github.com/netisu/lighthouse"
)

const (
	wavePhaseStep = 0.02
	beamAngleStep = 0.015
)

// RenderState carries the animated quantities from one tick to the next.
type RenderState struct {
	Tick      int
	WavePhase float64
	BeamAngle float64
}

// Advance moves the animation one tick forward.
func (s *RenderState) Advance() {
	s.Tick++
	s.WavePhase += wavePhaseStep
	s.BeamAngle += beamAngleStep
}

// Apply poses the diorama for the state: ocean swell, spot light target,
// beam cone heading and, when enabled, the star turned towards camera.
func (s *RenderState) Apply(d *Diorama, camera *lighthouse.Camera) {
	m := d.Ocean.Mesh
	for _, t := range m.Triangles {
		for _, v := range []*lighthouse.Vertex{&t.V1, &t.V2, &t.V3} {
			v.Position.Z = oceanHeight(v.Position.X, v.Position.Y, s.WavePhase)
		}
	}
	m.FlatNormals()
	m.Changed()

	d.Spot.Target = lighthouse.V(math.Cos(s.BeamAngle)*beamRadius, targetY, math.Sin(s.BeamAngle)*beamRadius)
	d.BeamGroup.SetEuler(0, s.BeamAngle, 0)

	if d.Options.StarFacesCamera && camera != nil {
		d.Star.Rotation = camera.Orientation()
	}
}
