package lighthouse

// Material describes how an object's surface is shaded.
type Material struct {
	Name    string
	Color   Color
	Opacity float64
	// Unlit surfaces ignore lights and show their flat color.
	Unlit        bool
	DoubleSided  bool
	NoDepthWrite bool
	// FlatShading meshes carry face normals; see Mesh.FlatNormals.
	FlatShading bool
}

// NewLambertMaterial returns an opaque lit material.
func NewLambertMaterial(name string, c Color) *Material {
	return &Material{Name: name, Color: c, Opacity: 1}
}

// NewBasicMaterial returns an opaque unlit material.
func NewBasicMaterial(name string, c Color) *Material {
	return &Material{Name: name, Color: c, Opacity: 1, Unlit: true}
}

func (m *Material) Transparent() bool {
	return m.Opacity < 1
}

// Object is a node of the scene graph. Objects without a mesh group their
// children.
type Object struct {
	Name     string
	Mesh     *Mesh
	Material *Material

	Position Vector
	Rotation Matrix
	Scale    Vector

	Parent   *Object
	Children []*Object

	Hidden bool
	// RenderOrder sorts transparent objects; lower values draw first.
	RenderOrder int
}

// NewEmptyObject returns a group node.
func NewEmptyObject(name string) *Object {
	return &Object{Name: name, Rotation: Identity(), Scale: Vector{1, 1, 1}}
}

func NewObjectFromMesh(name string, mesh *Mesh, material *Material) *Object {
	o := NewEmptyObject(name)
	o.Mesh = mesh
	o.Material = material
	return o
}

func NewTriangleObject(name string, triangles []*Triangle, material *Material) *Object {
	return NewObjectFromMesh(name, NewTriangleMesh(triangles), material)
}

// Add attaches children to o, detaching them from any previous parent.
func (o *Object) Add(children ...*Object) {
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.Remove(c)
		}
		c.Parent = o
		o.Children = append(o.Children, c)
	}
}

func (o *Object) Remove(child *Object) {
	for i, c := range o.Children {
		if c == child {
			o.Children = append(o.Children[:i], o.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (o *Object) SetPosition(x, y, z float64) {
	o.Position = Vector{x, y, z}
}

// SetEuler sets the rotation from angles about X, Y and Z.
func (o *Object) SetEuler(x, y, z float64) {
	o.Rotation = Euler(Vector{x, y, z})
}

// Matrix is the local transform: scale, then rotate, then translate.
func (o *Object) Matrix() Matrix {
	return Translate(o.Position).Mul(o.Rotation).Mul(Scale(o.Scale))
}

func (o *Object) WorldMatrix() Matrix {
	m := o.Matrix()
	for p := o.Parent; p != nil; p = p.Parent {
		m = p.Matrix().Mul(m)
	}
	return m
}

// Walk visits o and its visible descendants depth first with their world
// matrices.
func (o *Object) Walk(fn func(o *Object, world Matrix)) {
	parent := Identity()
	if o.Parent != nil {
		parent = o.Parent.WorldMatrix()
	}
	o.walk(parent, fn)
}

func (o *Object) walk(parent Matrix, fn func(*Object, Matrix)) {
	if o.Hidden {
		return
	}
	world := parent.Mul(o.Matrix())
	fn(o, world)
	for _, c := range o.Children {
		c.walk(world, fn)
	}
}

// Find returns the first descendant (or o itself) with the given name.
func (o *Object) Find(name string) *Object {
	if o.Name == name {
		return o
	}
	for _, c := range o.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// BoundingBox is the world-space box of every mesh under o.
func (o *Object) BoundingBox() Box {
	box := EmptyBox
	o.Walk(func(n *Object, world Matrix) {
		if n.Mesh == nil || len(n.Mesh.Triangles) == 0 {
			return
		}
		box = box.Extend(n.Mesh.BoundingBox().Transform(world))
	})
	return box
}
