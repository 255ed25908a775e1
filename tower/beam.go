package tower

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies which pass of the generator produced a beam.
type Kind int

const (
	MainLeg Kind = iota
	SecondaryLeg
	Ring
	Crossbeam
	HalfCrossbeam
)

var kindNames = [...]string{"main-leg", "secondary-leg", "ring", "crossbeam", "half-crossbeam"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every beam kind in emission order.
func Kinds() []Kind {
	return []Kind{MainLeg, SecondaryLeg, Ring, Crossbeam, HalfCrossbeam}
}

// Axis restricts a corner to the diagonal it sits on or to one cardinal axis.
type Axis int

const (
	Full Axis = iota
	XOnly
	ZOnly
)

// Mask zeroes the horizontal component that does not take part in a.
func (a Axis) Mask(p mgl64.Vec3) mgl64.Vec3 {
	switch a {
	case XOnly:
		p[2] = 0
	case ZOnly:
		p[0] = 0
	}
	return p
}

// parityAxes returns the axis pair used by the lower section for corner j:
// even corners keep X on their first target, odd corners keep Z.
func parityAxes(j int) (first, second Axis) {
	if j%2 == 0 {
		return XOnly, ZOnly
	}
	return ZOnly, XOnly
}

// BeamSpec is one structural member of the lattice.
type BeamSpec struct {
	A, B      mgl64.Vec3
	Thickness float64
	Kind      Kind
}

// Length is the distance between the two endpoints.
func (b BeamSpec) Length() float64 {
	return b.B.Sub(b.A).Len()
}

// Degenerate reports whether both endpoints coincide.
func (b BeamSpec) Degenerate() bool {
	return b.A == b.B
}

// emitter collects beams, dropping zero-length requests.
type emitter struct {
	beams   []BeamSpec
	skipped int
}

func (e *emitter) emit(kind Kind, a, b mgl64.Vec3, thickness float64) {
	beam := BeamSpec{A: a, B: b, Thickness: thickness, Kind: kind}
	if beam.Degenerate() {
		e.skipped++
		return
	}
	e.beams = append(e.beams, beam)
}
