package tower

// Lattice is a generated tower: its tier table and every beam in emission
// order.
type Lattice struct {
	Spec    TowerSpec
	Tiers   []Tier
	Beams   []BeamSpec
	Skipped int
}

// Build validates s and runs every emission pass.
func Build(s TowerSpec) (*Lattice, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tiers := BuildTiers(s)

	e := &emitter{}
	mainLegs(e, s, tiers)
	secondaryLegs(e, s, tiers)
	rings(e, s, tiers)
	crossbeams(e, s, tiers)
	halfCrossbeams(e, s, tiers)

	return &Lattice{Spec: s, Tiers: tiers, Beams: e.beams, Skipped: e.skipped}, nil
}

// Generate returns the beams of the tower described by s.
func Generate(s TowerSpec) ([]BeamSpec, error) {
	l, err := Build(s)
	if err != nil {
		return nil, err
	}
	return l.Beams, nil
}

// Count returns the number of beams of the given kind.
func (l *Lattice) Count(kind Kind) int {
	n := 0
	for _, b := range l.Beams {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// MainLegs runs the main leg pass alone.
func MainLegs(s TowerSpec, tiers []Tier) []BeamSpec {
	e := &emitter{}
	mainLegs(e, s, tiers)
	return e.beams
}

// SecondaryLegs runs the secondary leg pass alone.
func SecondaryLegs(s TowerSpec, tiers []Tier) []BeamSpec {
	e := &emitter{}
	secondaryLegs(e, s, tiers)
	return e.beams
}

// Rings runs the horizontal ring pass alone.
func Rings(s TowerSpec, tiers []Tier) []BeamSpec {
	e := &emitter{}
	rings(e, s, tiers)
	return e.beams
}

// Crossbeams runs the full crossbeam pass alone.
func Crossbeams(s TowerSpec, tiers []Tier) []BeamSpec {
	e := &emitter{}
	crossbeams(e, s, tiers)
	return e.beams
}

// HalfCrossbeams runs the half crossbeam pass alone.
func HalfCrossbeams(s TowerSpec, tiers []Tier) []BeamSpec {
	e := &emitter{}
	halfCrossbeams(e, s, tiers)
	return e.beams
}

// mainLegs runs one leg per corner from the apex to the ground.
func mainLegs(e *emitter, s TowerSpec, tiers []Tier) {
	top, bottom := tiers[0], tiers[len(tiers)-1]
	for j := range Directions {
		e.emit(MainLeg, top.Corners[j], bottom.Corners[j], s.LegThickness)
	}
}

// secondaryLegs runs from the split tier to the ground along a single axis,
// X for even corners and Z for odd ones.
func secondaryLegs(e *emitter, s TowerSpec, tiers []Tier) {
	top, bottom := tiers[s.SplitTier()], tiers[len(tiers)-1]
	for j := range Directions {
		axis, _ := parityAxes(j)
		e.emit(SecondaryLeg, axis.Mask(top.Corners[j]), axis.Mask(bottom.Corners[j]), s.LegThickness)
	}
}

// rings closes a square around every interior tier.
func rings(e *emitter, s TowerSpec, tiers []Tier) {
	for i := 1; i < len(tiers)-1; i++ {
		c := tiers[i].Corners
		for j := range c {
			e.emit(Ring, c[j], c[(j+1)%4], s.BraceThickness)
		}
	}
}

// crossbeams X-braces every gap above the split tier.
func crossbeams(e *emitter, s TowerSpec, tiers []Tier) {
	for i := 0; i < s.SplitTier(); i++ {
		upper, lower := tiers[i].Corners, tiers[i+1].Corners
		for j := range upper {
			e.emit(Crossbeam, upper[j], lower[(j+1)%4], s.BraceThickness)
			e.emit(Crossbeam, upper[j], lower[(j+3)%4], s.BraceThickness)
		}
	}
}

// halfCrossbeams braces the gaps below the split tier towards axis points
// instead of neighbouring corners.
func halfCrossbeams(e *emitter, s TowerSpec, tiers []Tier) {
	for i := s.SplitTier(); i < len(tiers)-1; i++ {
		upper, lower := tiers[i].Corners, tiers[i+1].Corners
		for j := range upper {
			first, second := parityAxes(j)
			e.emit(HalfCrossbeam, upper[j], first.Mask(lower[(j+1)%4]), s.BraceThickness)
			e.emit(HalfCrossbeam, upper[j], second.Mask(lower[(j+3)%4]), s.BraceThickness)
			e.emit(HalfCrossbeam, lower[j], first.Mask(upper[(j+1)%4]), s.BraceThickness)
			e.emit(HalfCrossbeam, lower[j], second.Mask(upper[(j+3)%4]), s.BraceThickness)
		}
	}
}
