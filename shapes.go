package lighthouse

import (
	"math"
	"sort"
)

// Builders in this file follow the conventions of common scene-graph
// libraries: solids are centered on the origin with Y up, flat shapes lie in
// the XY plane facing +Z.

type meshBuilder struct {
	triangles []*Triangle
}

func (b *meshBuilder) add(p1, p2, p3 Vector) {
	t := NewTriangleForPoints(p1, p2, p3)
	if t.IsDegenerate() {
		return
	}
	b.triangles = append(b.triangles, t)
}

// addOutward adds the triangle wound so that it faces away from center.
func (b *meshBuilder) addOutward(center, p1, p2, p3 Vector) {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	centroid := p1.Add(p2).Add(p3).DivScalar(3)
	if n.Dot(centroid.Sub(center)) < 0 {
		p2, p3 = p3, p2
	}
	b.add(p1, p2, p3)
}

func (b *meshBuilder) mesh() *Mesh {
	return NewTriangleMesh(b.triangles)
}

func ring(radius, y float64, segments int) []Vector {
	points := make([]Vector, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		points[i] = Vector{radius * math.Cos(a), y, radius * math.Sin(a)}
	}
	return points
}

// NewCylinder builds a possibly tapered cylinder of the given height along Y.
func NewCylinder(radiusTop, radiusBottom, height float64, segments int, openEnded bool) *Mesh {
	if segments < 3 {
		segments = 3
	}
	h := height / 2
	top := ring(radiusTop, h, segments)
	bottom := ring(radiusBottom, -h, segments)

	b := &meshBuilder{}
	for i := 0; i < segments; i++ {
		b0, b1 := bottom[i], bottom[i+1]
		t0, t1 := top[i], top[i+1]
		b.add(b0, t1, b1)
		b.add(b0, t0, t1)
		if openEnded {
			continue
		}
		b.add(Vector{0, h, 0}, t1, t0)
		b.add(Vector{0, -h, 0}, b0, b1)
	}
	m := b.mesh()
	smoothSides(m, radiusTop, radiusBottom, height)
	return m
}

// smoothSides replaces side face normals with per-vertex normals of the
// ideal surface so unshaded-flat cylinders look round.
func smoothSides(m *Mesh, radiusTop, radiusBottom, height float64) {
	slope := (radiusBottom - radiusTop) / height
	fix := func(v *Vertex) {
		p := v.Position
		n := Vector{p.X, slope * math.Hypot(p.X, p.Z), p.Z}
		if p.X == 0 && p.Z == 0 {
			return
		}
		v.Normal = n.Normalize()
	}
	for _, t := range m.Triangles {
		if math.Abs(t.Normal().Y) > 1-1e-9 {
			continue
		}
		fix(&t.V1)
		fix(&t.V2)
		fix(&t.V3)
	}
}

// NewCone builds a cone with its apex at +height/2.
func NewCone(radius, height float64, segments int, openEnded bool) *Mesh {
	return NewCylinder(0, radius, height, segments, openEnded)
}

func NewSphere(radius float64, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	point := func(i, j int) Vector {
		switch j {
		case 0:
			return Vector{0, radius, 0}
		case heightSegments:
			return Vector{0, -radius, 0}
		}
		phi := float64(i) / float64(widthSegments) * 2 * math.Pi
		theta := float64(j) / float64(heightSegments) * math.Pi
		return Vector{
			-radius * math.Cos(phi) * math.Sin(theta),
			radius * math.Cos(theta),
			radius * math.Sin(phi) * math.Sin(theta),
		}
	}
	b := &meshBuilder{}
	for j := 0; j < heightSegments; j++ {
		for i := 0; i < widthSegments; i++ {
			p00 := point(i, j)
			p10 := point(i+1, j)
			p01 := point(i, j+1)
			p11 := point(i+1, j+1)
			b.addOutward(Vector{}, p00, p01, p11)
			b.addOutward(Vector{}, p00, p11, p10)
		}
	}
	m := b.mesh()
	for _, t := range m.Triangles {
		t.V1.Normal = t.V1.Position.Normalize()
		t.V2.Normal = t.V2.Position.Normalize()
		t.V3.Normal = t.V3.Position.Normalize()
	}
	return m
}

// NewPlane builds a grid of width x height split into segments, in XY.
func NewPlane(width, height float64, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	point := func(i, j int) Vector {
		x := float64(i)/float64(widthSegments)*width - width/2
		y := height/2 - float64(j)/float64(heightSegments)*height
		return Vector{x, y, 0}
	}
	b := &meshBuilder{}
	for j := 0; j < heightSegments; j++ {
		for i := 0; i < widthSegments; i++ {
			a := point(i, j)
			c := point(i, j+1)
			d := point(i+1, j+1)
			e := point(i+1, j)
			b.add(a, c, e)
			b.add(c, d, e)
		}
	}
	return b.mesh()
}

func NewCircle(radius float64, segments int) *Mesh {
	return NewRing(0, radius, segments)
}

// NewRing builds a flat annulus; an inner radius of zero gives a disc.
func NewRing(innerRadius, outerRadius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	b := &meshBuilder{}
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		i0 := Vector{innerRadius * math.Cos(a0), innerRadius * math.Sin(a0), 0}
		i1 := Vector{innerRadius * math.Cos(a1), innerRadius * math.Sin(a1), 0}
		o0 := Vector{outerRadius * math.Cos(a0), outerRadius * math.Sin(a0), 0}
		o1 := Vector{outerRadius * math.Cos(a1), outerRadius * math.Sin(a1), 0}
		b.add(i0, o0, o1)
		b.add(i0, o1, i1)
	}
	return b.mesh()
}

// NewPolygon fills a closed outline that is star-shaped around the origin,
// in XY, facing +Z.
func NewPolygon(points []Vector) *Mesh {
	b := &meshBuilder{}
	front := Vector{0, 0, -1}
	for i := range points {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		b.addOutward(front, Vector{}, p0, p1)
	}
	return b.mesh()
}

// NewDodecahedron builds a regular dodecahedron with the given circumradius.
func NewDodecahedron(radius float64) *Mesh {
	t := (1 + math.Sqrt(5)) / 2
	r := 1 / t
	var vertices []Vector
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				vertices = append(vertices, Vector{x, y, z})
			}
		}
	}
	for _, a := range []float64{-r, r} {
		for _, c := range []float64{-t, t} {
			vertices = append(vertices,
				Vector{0, a, c},
				Vector{a, c, 0},
				Vector{c, 0, a})
		}
	}
	for i, v := range vertices {
		vertices[i] = v.Normalize().MulScalar(radius)
	}

	// each face is perpendicular to one of the twelve directions of the dual
	// icosahedron
	var normals []Vector
	for _, a := range []float64{-1, 1} {
		for _, c := range []float64{-t, t} {
			normals = append(normals,
				Vector{0, c, a},
				Vector{a, 0, c},
				Vector{c, a, 0})
		}
	}

	b := &meshBuilder{}
	for _, n := range normals {
		n = n.Normalize()
		best := math.Inf(-1)
		for _, v := range vertices {
			best = math.Max(best, v.Dot(n))
		}
		var face []Vector
		for _, v := range vertices {
			if v.Dot(n) > best-1e-9*radius {
				face = append(face, v)
			}
		}
		center := n.MulScalar(best)
		u := face[0].Sub(center).Normalize()
		w := n.Cross(u)
		sort.Slice(face, func(i, j int) bool {
			pi := face[i].Sub(center)
			pj := face[j].Sub(center)
			return math.Atan2(pi.Dot(w), pi.Dot(u)) < math.Atan2(pj.Dot(w), pj.Dot(u))
		})
		for i := 1; i < len(face)-1; i++ {
			b.addOutward(Vector{}, face[0], face[i], face[i+1])
		}
	}
	return b.mesh()
}
