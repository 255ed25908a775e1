package lighthouse

// Camera is a perspective camera. Fovy is the vertical field of view in
// degrees.
type Camera struct {
	Position Vector
	Target   Vector
	Up       Vector
	Fovy     float64
	Aspect   float64
	Near     float64
	Far      float64
}

func NewCamera(position, target Vector, fovy, aspect, near, far float64) *Camera {
	return &Camera{position, target, Vector{0, 1, 0}, fovy, aspect, near, far}
}

func (c *Camera) LookAt(target Vector) {
	c.Target = target
}

func (c *Camera) View() Matrix {
	return LookAt(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() Matrix {
	return Perspective(c.Fovy, c.Aspect, c.Near, c.Far)
}

// Matrix is the combined view-projection matrix.
func (c *Camera) Matrix() Matrix {
	return c.View().Perspective(c.Fovy, c.Aspect, c.Near, c.Far)
}

// Orientation is the camera's rotation in world space; an object given this
// rotation faces the camera with its +Z axis.
func (c *Camera) Orientation() Matrix {
	v := c.View()
	v.X03, v.X13, v.X23 = 0, 0, 0
	return v.Transpose()
}
