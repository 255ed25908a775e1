package lighthouse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOutward checks that every face of a closed mesh centered on the
// origin points away from it.
func assertOutward(t *testing.T, m *Mesh) {
	t.Helper()
	for i, tri := range m.Triangles {
		c := tri.V1.Position.Add(tri.V2.Position).Add(tri.V3.Position).DivScalar(3)
		assert.Greater(t, tri.Normal().Dot(c), 0.0, "triangle %d faces inwards", i)
	}
}

func TestCylinder(t *testing.T) {
	m := NewCylinder(1, 1, 2, 8, false)
	assert.Len(t, m.Triangles, 32)
	assertOutward(t, m)

	box := m.BoundingBox()
	assertVector(t, V(-1, -1, -1), box.Min)
	assertVector(t, V(1, 1, 1), box.Max)

	open := NewCylinder(1, 1, 2, 8, true)
	assert.Len(t, open.Triangles, 16)
	for _, tri := range open.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			// side normals are those of the ideal round surface
			assert.InDelta(t, 0, v.Normal.Y, eps)
			want := V(v.Position.X, 0, v.Position.Z).Normalize()
			assertVector(t, want, v.Normal)
		}
	}

	assert.Len(t, NewCylinder(1, 1, 1, 1, true).Triangles, 6)
}

func TestCone(t *testing.T) {
	m := NewCone(1, 2, 8, false)
	assert.Len(t, m.Triangles, 16)
	assertOutward(t, m)
	for _, tri := range m.Triangles {
		assert.False(t, tri.IsDegenerate())
	}
	assert.InDelta(t, 1.0, m.BoundingBox().Max.Y, eps)
}

func TestSphere(t *testing.T) {
	m := NewSphere(2, 8, 4)
	assert.Len(t, m.Triangles, 48)
	assertOutward(t, m)
	for _, tri := range m.Triangles {
		assert.InDelta(t, 2, tri.V1.Position.Length(), eps)
		assertVector(t, tri.V1.Position.Normalize(), tri.V1.Normal)
	}
}

func TestPlane(t *testing.T) {
	m := NewPlane(4, 2, 2, 1)
	assert.Len(t, m.Triangles, 4)
	for _, tri := range m.Triangles {
		assertVector(t, V(0, 0, 1), tri.Normal())
	}
	box := m.BoundingBox()
	assertVector(t, V(-2, -1, 0), box.Min)
	assertVector(t, V(2, 1, 0), box.Max)
}

func TestRingAndCircle(t *testing.T) {
	r := NewRing(0.5, 1, 8)
	assert.Len(t, r.Triangles, 16)
	for _, tri := range r.Triangles {
		assertVector(t, V(0, 0, 1), tri.Normal())
	}
	assert.Len(t, NewCircle(1, 8).Triangles, 8)
}

func TestPolygonFacesFront(t *testing.T) {
	var points []Vector
	for i := 0; i < 10; i++ {
		a := float64(i) / 10 * 2 * math.Pi
		r := 1.0
		if i%2 == 1 {
			r = 0.4
		}
		points = append(points, V(r*math.Cos(a), r*math.Sin(a), 0))
	}
	m := NewPolygon(points)
	assert.Len(t, m.Triangles, 10)
	for _, tri := range m.Triangles {
		assertVector(t, V(0, 0, 1), tri.Normal())
	}
}

func TestDodecahedron(t *testing.T) {
	m := NewDodecahedron(1.5)
	require.Len(t, m.Triangles, 36)
	assertOutward(t, m)
	for _, tri := range m.Triangles {
		assert.InDelta(t, 1.5, tri.V1.Position.Length(), 1e-9)
	}
}

func TestSimplify(t *testing.T) {
	m := NewSphere(1, 32, 16)
	before := len(m.Triangles)
	m.Simplify(0.5)
	assert.Less(t, len(m.Triangles), before)
	assert.NotEmpty(t, m.Triangles)
}

func TestMeshCopyIsDeep(t *testing.T) {
	m := NewPlane(1, 1, 1, 1)
	c := m.Copy()
	c.Transform(Translate(V(0, 0, 3)))
	assert.InDelta(t, 0, m.BoundingBox().Max.Z, eps)
	assert.InDelta(t, 3, c.BoundingBox().Max.Z, eps)
}

func TestFlatNormals(t *testing.T) {
	m := NewSphere(1, 8, 4)
	m.FlatNormals()
	for _, tri := range m.Triangles {
		n := tri.Normal()
		assertVector(t, n, tri.V1.Normal)
		assertVector(t, n, tri.V3.Normal)
	}
}
