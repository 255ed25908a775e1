// Package tower generates the lattice framework of the lighthouse: a tapered
// four-legged truss described as a list of beams between 3D points.
package tower

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidSpec is returned for tower parameters that cannot produce a
// tapered lattice.
var ErrInvalidSpec = errors.New("tower: invalid spec")

// TowerSpec holds the parameters of a lattice tower.
type TowerSpec struct {
	Height         float64 `toml:"height" yaml:"height"`
	GroundLevel    float64 `toml:"ground_level" yaml:"ground_level"`
	TierCount      int     `toml:"tiers" yaml:"tiers"`
	TopRadius      float64 `toml:"top_radius" yaml:"top_radius"`
	BottomRadius   float64 `toml:"bottom_radius" yaml:"bottom_radius"`
	LegThickness   float64 `toml:"leg_thickness" yaml:"leg_thickness"`
	BraceThickness float64 `toml:"brace_thickness" yaml:"brace_thickness"`
}

// DefaultSpec returns the lighthouse tower used by the diorama.
func DefaultSpec() TowerSpec {
	return TowerSpec{
		Height:         18,
		GroundLevel:    0,
		TierCount:      5,
		TopRadius:      1.2,
		BottomRadius:   4,
		LegThickness:   0.3,
		BraceThickness: 0.12,
	}
}

// Validate reports whether s describes a buildable tower.
func (s TowerSpec) Validate() error {
	if s.TierCount < 1 {
		return errors.Wrapf(ErrInvalidSpec, "tier count %d < 1", s.TierCount)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"height", s.Height},
		{"ground level", s.GroundLevel},
		{"top radius", s.TopRadius},
		{"bottom radius", s.BottomRadius},
		{"leg thickness", s.LegThickness},
		{"brace thickness", s.BraceThickness},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.Wrapf(ErrInvalidSpec, "%s %g is not finite", f.name, f.value)
		}
	}
	if s.Height <= s.GroundLevel {
		return errors.Wrapf(ErrInvalidSpec, "height %g <= ground level %g", s.Height, s.GroundLevel)
	}
	if s.TopRadius < 0 {
		return errors.Wrapf(ErrInvalidSpec, "top radius %g < 0", s.TopRadius)
	}
	if s.BottomRadius <= s.TopRadius {
		return errors.Wrapf(ErrInvalidSpec, "bottom radius %g <= top radius %g", s.BottomRadius, s.TopRadius)
	}
	if s.LegThickness <= 0 || s.BraceThickness <= 0 {
		return errors.Wrapf(ErrInvalidSpec, "beam thickness %g/%g must be positive", s.LegThickness, s.BraceThickness)
	}
	return nil
}

// SplitTier is the first tier of the lower, sparsely braced section. Secondary
// legs start here and half crossbeams fill the gaps below it.
func (s TowerSpec) SplitTier() int {
	if s.TierCount < 2 {
		return 0
	}
	return s.TierCount - 2
}
