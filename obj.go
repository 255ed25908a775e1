package lighthouse

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteOBJ writes every mesh under root as a Wavefront OBJ object with its
// triangles baked into world space. Materials are referenced by name, see
// WriteMTL.
func WriteOBJ(w io.Writer, root *Object, mtllib string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# lighthouse diorama")
	if mtllib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtllib)
	}
	index := 1
	n := 0
	root.Walk(func(o *Object, world Matrix) {
		if o.Mesh == nil || len(o.Mesh.Triangles) == 0 {
			return
		}
		n++
		fmt.Fprintf(bw, "o %s\n", objName(o, n))
		fmt.Fprintf(bw, "usemtl %s\n", materialOf(o).Name)
		normal := world.Inverse().Transpose()
		for _, t := range o.Mesh.Triangles {
			for _, v := range []Vertex{t.V1, t.V2, t.V3} {
				p := world.MulPosition(v.Position)
				fmt.Fprintf(bw, "v %s %s %s\n", ff(p.X), ff(p.Y), ff(p.Z))
			}
			for _, v := range []Vertex{t.V1, t.V2, t.V3} {
				q := normal.MulDirection(v.Normal)
				fmt.Fprintf(bw, "vn %s %s %s\n", ff(q.X), ff(q.Y), ff(q.Z))
			}
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", index, index, index+1, index+1, index+2, index+2)
			index += 3
		}
	})
	return errors.Wrap(bw.Flush(), "write obj")
}

// WriteMTL writes the materials used under root.
func WriteMTL(w io.Writer, root *Object) error {
	materials := map[string]*Material{}
	root.Walk(func(o *Object, _ Matrix) {
		if o.Mesh != nil {
			m := materialOf(o)
			materials[m.Name] = m
		}
	})
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)

	bw := bufio.NewWriter(w)
	for _, name := range names {
		m := materials[name]
		fmt.Fprintf(bw, "newmtl %s\n", name)
		fmt.Fprintf(bw, "Kd %s %s %s\n", ff(m.Color.R), ff(m.Color.G), ff(m.Color.B))
		fmt.Fprintf(bw, "d %s\n", ff(m.Opacity))
		if m.Unlit {
			fmt.Fprintln(bw, "illum 0")
		} else {
			fmt.Fprintln(bw, "illum 1")
		}
		fmt.Fprintln(bw)
	}
	return errors.Wrap(bw.Flush(), "write mtl")
}

func objName(o *Object, n int) string {
	if o.Name == "" {
		return fmt.Sprintf("object%d", n)
	}
	return strings.ReplaceAll(o.Name, " ", "_")
}

func ff(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// LoadOBJFromReader reads the triangles of an OBJ stream into one mesh.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	vs := make([]Vector, 1, 1024)
	vts := make([]Vector, 1, 1024)
	vns := make([]Vector, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vs = append(vs, Vector{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "vt":
			vts = append(vts, Vector{pf(fields[1]), pf(fields[2]), 0})
		case "vn":
			vns = append(vns, Vector{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "f":
			args := fields[1:]
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))

			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(vertex[0], len(vs))
				fvts[i] = fixIndex(vertex[1], len(vts))
				fvns[i] = fixIndex(vertex[2], len(vns))
			}

			for i := 1; i < len(fvs)-1; i++ {
				t := &Triangle{}
				i1, i2, i3 := 0, i, i+1

				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]

				if fvns[i1] > 0 {
					t.V1.Normal = vns[fvns[i1]]
					t.V2.Normal = vns[fvns[i2]]
					t.V3.Normal = vns[fvns[i3]]
				}
				if fvts[i1] > 0 {
					t.V1.Texture = vts[fvts[i1]]
					t.V2.Texture = vts[fvts[i2]]
					t.V3.Texture = vts[fvts[i3]]
				}

				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}
	return NewTriangleMesh(triangles), scanner.Err()
}

// Helper for fast float parsing
func pf(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// Helper to handle negative indices in OBJ
func fixIndex(value string, length int) int {
	if value == "" {
		return 0
	}
	parsed, _ := strconv.Atoi(value)
	if parsed < 0 {
		return parsed + length
	}
	return parsed
}
