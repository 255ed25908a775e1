package lighthouse

import "math"

var EmptyBox = Box{}

type Box struct {
	Min, Max Vector
}

// BoxForBoxes returns the union of boxes.
func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return EmptyBox
	}
	x0 := math.Inf(1)
	y0 := math.Inf(1)
	z0 := math.Inf(1)
	x1 := math.Inf(-1)
	y1 := math.Inf(-1)
	z1 := math.Inf(-1)
	for _, box := range boxes {
		x0 = math.Min(x0, box.Min.X)
		y0 = math.Min(y0, box.Min.Y)
		z0 = math.Min(z0, box.Min.Z)
		x1 = math.Max(x1, box.Max.X)
		y1 = math.Max(y1, box.Max.Y)
		z1 = math.Max(z1, box.Max.Z)
	}
	return Box{Vector{x0, y0, z0}, Vector{x1, y1, z1}}
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Center() Vector {
	return a.Min.Add(a.Size().DivScalar(2))
}

func (a Box) Extend(b Box) Box {
	if a == EmptyBox {
		return b
	}
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Contains(b Vector) bool {
	return a.Min.X <= b.X && a.Max.X >= b.X &&
		a.Min.Y <= b.Y && a.Max.Y >= b.Y &&
		a.Min.Z <= b.Z && a.Max.Z >= b.Z
}

func (a Box) Corners() []Vector {
	return []Vector{
		{a.Min.X, a.Min.Y, a.Min.Z},
		{a.Min.X, a.Min.Y, a.Max.Z},
		{a.Min.X, a.Max.Y, a.Min.Z},
		{a.Min.X, a.Max.Y, a.Max.Z},
		{a.Max.X, a.Min.Y, a.Min.Z},
		{a.Max.X, a.Min.Y, a.Max.Z},
		{a.Max.X, a.Max.Y, a.Min.Z},
		{a.Max.X, a.Max.Y, a.Max.Z},
	}
}

// Transform returns the axis-aligned box around the transformed corners.
func (a Box) Transform(m Matrix) Box {
	var boxes []Box
	for _, c := range a.Corners() {
		p := m.MulPosition(c)
		boxes = append(boxes, Box{p, p})
	}
	return BoxForBoxes(boxes)
}
