package tower

import "github.com/go-gl/mathgl/mgl64"

// Directions are the diagonal corner signs of every tier, in corner order.
var Directions = [4][2]float64{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

// Tier is one horizontal cross-section of the lattice. Index 0 is the apex,
// index TierCount sits on the ground.
type Tier struct {
	Index   int
	Height  float64
	Radius  float64
	Corners [4]mgl64.Vec3
}

// BuildTiers computes the tier table for s. The caller validates s first.
func BuildTiers(s TowerSpec) []Tier {
	n := s.TierCount
	tierHeight := (s.Height - s.GroundLevel) / float64(n)
	tierWidth := (s.BottomRadius - s.TopRadius) / float64(n)

	tiers := make([]Tier, n+1)
	for i := range tiers {
		t := Tier{
			Index:  i,
			Height: s.Height - float64(i)*tierHeight,
			Radius: s.TopRadius + float64(i)*tierWidth,
		}
		// pin the ends exactly, interpolation drifts in the last bits
		if i == n {
			t.Height = s.GroundLevel
			t.Radius = s.BottomRadius
		}
		for j, d := range Directions {
			t.Corners[j] = mgl64.Vec3{t.Radius * d[0], t.Height, t.Radius * d[1]}
		}
		tiers[i] = t
	}
	return tiers
}
