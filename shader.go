package lighthouse

import (
	"math"

	"github.com/pkg/errors"
)

// Shader turns mesh vertices into clip space and shades fragments.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// ObjectShader is told which object it is about to draw, so it can apply the
// object's world transform.
type ObjectShader interface {
	Shader
	SetObject(o *Object, world Matrix)
}

// transform is the vertex stage shared by the scene shaders.
type transform struct {
	Matrix         Matrix
	CameraPosition Vector
	model          Matrix
	normal         Matrix
}

func newTransform(camera *Camera) transform {
	return transform{
		Matrix:         camera.Matrix(),
		CameraPosition: camera.Position,
		model:          Identity(),
		normal:         Identity(),
	}
}

func (t *transform) SetObject(o *Object, world Matrix) {
	t.model = world
	t.normal = world.Inverse().Transpose()
}

func (t *transform) Vertex(v Vertex) Vertex {
	v.World = t.model.MulPosition(v.Position)
	v.Output = t.Matrix.MulPositionW(v.World)
	v.Normal = t.normal.MulDirection(v.Normal)
	return v
}

// facing returns the normal to light with. Double sided materials turn it
// towards the camera.
func (t *transform) facing(v Vertex, m *Material) Vector {
	if m.DoubleSided && v.Normal.Dot(t.CameraPosition.Sub(v.World)) < 0 {
		return v.Normal.Negate()
	}
	return v.Normal
}

func materialOf(o *Object) *Material {
	if o.Material == nil {
		return defaultMaterial
	}
	return o.Material
}

var defaultMaterial = NewLambertMaterial("default", Gray(0.5))

// PhongShader lights surfaces with the scene lights, adds an optional
// specular term and applies fog.
type PhongShader struct {
	transform
	Lights        *Lights
	Fog           *Fog
	SpecularColor Color
	SpecularPower float64
}

func NewPhongShader(camera *Camera, lights *Lights, fog *Fog) *PhongShader {
	return &PhongShader{
		transform:     newTransform(camera),
		Lights:        lights,
		Fog:           fog,
		SpecularColor: White,
		SpecularPower: 0,
	}
}

func (shader *PhongShader) Fragment(v Vertex, fromObject *Object) Color {
	m := materialOf(fromObject)
	view := shader.CameraPosition.Sub(v.World)
	distance := view.Length()
	if m.Unlit {
		return shader.Fog.Apply(m.Color.Alpha(m.Opacity), distance)
	}
	normal := shader.facing(v, m)
	view = view.Normalize()
	light := shader.Lights.Irradiance(v.World, normal)
	if shader.SpecularPower > 0 {
		for _, d := range shader.Lights.Directional {
			dir := d.Position.Normalize()
			reflected := dir.Negate().Reflect(normal)
			specular := math.Max(view.Dot(reflected), 0)
			if specular > 0 {
				specular = math.Pow(specular, shader.SpecularPower)
				light = light.Add(shader.SpecularColor.MulScalar(specular * d.Intensity))
			}
		}
	}
	c := m.Color.Mul(light).Min(White).Alpha(m.Opacity)
	return shader.Fog.Apply(c, distance)
}

// NewShader returns the lit shader registered under name.
func NewShader(name string, camera *Camera, lights *Lights, fog *Fog) (ObjectShader, error) {
	switch name {
	case "", "phong", "lambert":
		return NewPhongShader(camera, lights, fog), nil
	case "toon":
		return NewToonShader(camera, lights, fog), nil
	}
	return nil, errors.Errorf("unknown shading %q", name)
}
