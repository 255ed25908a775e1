package lighthouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clipVertex(x, y, z float64) Vertex {
	return Vertex{Output: VectorW{x, y, z, 1}}
}

func TestClipTriangleInside(t *testing.T) {
	tri := &Triangle{clipVertex(0, 0, 0), clipVertex(0.5, 0, 0), clipVertex(0, 0.5, 0)}
	out := ClipTriangle(tri)
	require.Len(t, out, 1)
	assert.Equal(t, *tri, *out[0])
}

func TestClipTrianglePartial(t *testing.T) {
	tri := &Triangle{clipVertex(2, 0, 0), clipVertex(0, 0.5, 0), clipVertex(0, -0.5, 0)}
	out := ClipTriangle(tri)
	require.Len(t, out, 2)
	for _, c := range out {
		for _, v := range []Vertex{c.V1, c.V2, c.V3} {
			assert.LessOrEqual(t, v.Output.X, v.Output.W+1e-9)
		}
	}
}

func TestClipTriangleOutside(t *testing.T) {
	tri := &Triangle{clipVertex(2, 0, 0), clipVertex(3, 0.5, 0), clipVertex(3, -0.5, 0)}
	assert.Empty(t, ClipTriangle(tri))
}
