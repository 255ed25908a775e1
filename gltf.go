package lighthouse

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLBOptions controls binary glTF export.
type GLBOptions struct {
	// Simplify, when in (0, 1), reduces each mesh to that fraction of its
	// triangles before export.
	Simplify float64
}

// NewGLTFDocument converts every mesh under root into a glTF document with
// one node, mesh and material per object. World transforms are baked into the
// vertex data.
func NewGLTFDocument(root *Object, opts GLBOptions) *gltf.Document {
	doc := gltf.NewDocument()
	materials := map[*Material]uint32{}

	root.Walk(func(o *Object, world Matrix) {
		if o.Mesh == nil || len(o.Mesh.Triangles) == 0 {
			return
		}
		mesh := o.Mesh.Copy()
		mesh.Transform(world)
		if opts.Simplify > 0 && opts.Simplify < 1 {
			mesh.Simplify(opts.Simplify)
		}
		if len(mesh.Triangles) == 0 {
			return
		}

		m := materialOf(o)
		mi, ok := materials[m]
		if !ok {
			mi = uint32(len(doc.Materials))
			doc.Materials = append(doc.Materials, gltfMaterial(m))
			materials[m] = mi
		}

		positions := make([][3]float32, 0, len(mesh.Triangles)*3)
		normals := make([][3]float32, 0, len(mesh.Triangles)*3)
		indices := make([]uint32, 0, len(mesh.Triangles)*3)
		for _, t := range mesh.Triangles {
			for _, v := range []Vertex{t.V1, t.V2, t.V3} {
				indices = append(indices, uint32(len(positions)))
				positions = append(positions, float32s(v.Position))
				normals = append(normals, float32s(v.Normal.Normalize()))
			}
		}

		primitive := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
			Material: gltf.Index(mi),
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: o.Name, Primitives: []*gltf.Primitive{primitive}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: o.Name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	})
	return doc
}

func gltfMaterial(m *Material) *gltf.Material {
	out := &gltf.Material{
		Name: m.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{float32(m.Color.R), float32(m.Color.G), float32(m.Color.B), float32(m.Opacity)},
		},
		DoubleSided: m.DoubleSided,
	}
	if m.Transparent() {
		out.AlphaMode = gltf.AlphaBlend
	}
	return out
}

func float32s(v Vector) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// WriteGLB encodes the objects under root as binary glTF.
func WriteGLB(w io.Writer, root *Object, opts GLBOptions) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return errors.Wrap(enc.Encode(NewGLTFDocument(root, opts)), "encode glb")
}

// SaveGLB writes the objects under root to a .glb file.
func SaveGLB(path string, root *Object, opts GLBOptions) error {
	return errors.Wrapf(gltf.SaveBinary(NewGLTFDocument(root, opts), path), "save %s", path)
}

// LoadGLTF loads a .gltf or .glb file into one mesh.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return meshFromDocument(doc)
}

// ReadGLB decodes binary glTF from r into one mesh.
func ReadGLB(r io.Reader) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decode glb")
	}
	return meshFromDocument(doc)
}

func meshFromDocument(doc *gltf.Document) (*Mesh, error) {
	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			// Only triangle lists are drawn.
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, errors.Wrap(err, "read positions")
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, errors.Wrap(err, "read indices")
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			vertex := func(i uint32) Vertex {
				var v Vertex
				v.Position = Vector{float64(positions[i][0]), float64(positions[i][1]), float64(positions[i][2])}
				if len(normals) > int(i) {
					v.Normal = Vector{float64(normals[i][0]), float64(normals[i][1]), float64(normals[i][2])}
				}
				return v
			}
			for i := 0; i+2 < len(indices); i += 3 {
				t := &Triangle{vertex(indices[i]), vertex(indices[i+1]), vertex(indices[i+2])}
				t.FixNormals()
				allTriangles = append(allTriangles, t)
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, errors.New("no triangles found in gltf")
	}

	return NewTriangleMesh(allTriangles), nil
}
