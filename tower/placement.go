package tower

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BeamAxis is the axis of an unplaced beam mesh.
var BeamAxis = mgl64.Vec3{0, 1, 0}

// Placement orients a unit beam mesh, built along BeamAxis and centered on
// the origin, so that it spans a BeamSpec.
type Placement struct {
	Midpoint mgl64.Vec3
	Length   float64
	Radius   float64
	Rotation mgl64.Quat
}

// Place computes the placement of b. It returns false for degenerate beams,
// which have no direction to align to, and for beams with non-finite ends.
func Place(b BeamSpec) (Placement, bool) {
	d := b.B.Sub(b.A)
	length := d.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Placement{}, false
	}
	return Placement{
		Midpoint: b.A.Add(b.B).Mul(0.5),
		Length:   length,
		Radius:   b.Thickness / 2,
		Rotation: mgl64.QuatBetweenVectors(BeamAxis, d.Mul(1/length)),
	}, true
}

// Endpoints reconstructs the beam ends from the placement.
func (p Placement) Endpoints() (a, b mgl64.Vec3) {
	half := p.Rotation.Rotate(BeamAxis).Mul(p.Length / 2)
	return p.Midpoint.Sub(half), p.Midpoint.Add(half)
}

// Transform is the model matrix of the placed beam: rotate then translate.
// Beam meshes are expected to already have the placement's length and
// radius.
func (p Placement) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(p.Midpoint[0], p.Midpoint[1], p.Midpoint[2]).Mul4(p.Rotation.Mat4())
}
