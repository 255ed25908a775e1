package diorama

import (
	"math"

	"github.com/netisu/lighthouse"
)

const (
	orbitHeight      = 12
	dragSensitivity  = 0.01 // radians per pixel
	maxPitch         = math.Pi / 3
	zoomStep         = 0.5
	minOrbitDistance = 15
	maxOrbitDistance = 50
)

// Orbit turns mouse drags and wheel steps into a camera circling the
// lighthouse at the orbit height, always looking at the tower.
type Orbit struct {
	Yaw, Pitch float64
	Radius     float64
	Width      int
	Height     int

	dragging     bool
	lastX, lastY int
}

// NewOrbit starts the orbit at the diorama's initial camera position.
func NewOrbit(width, height int) *Orbit {
	o := &Orbit{Width: width, Height: height}
	o.SetPosition(cameraStart)
	return o
}

// SetPosition derives yaw, pitch and radius from a camera position.
func (o *Orbit) SetPosition(p lighthouse.Vector) {
	rel := p.Sub(lighthouse.V(0, orbitHeight, 0))
	o.Radius = rel.Length()
	if o.Radius == 0 {
		return
	}
	o.Yaw = math.Atan2(rel.X, rel.Z)
	o.Pitch = clampPitch(math.Asin(rel.Y / o.Radius))
}

func clampPitch(p float64) float64 {
	return math.Max(-maxPitch, math.Min(maxPitch, p))
}

func (o *Orbit) MouseDown(x, y int) {
	o.dragging = true
	o.lastX, o.lastY = x, y
}

// MouseMove rotates the orbit while a drag is in progress. Dragging right
// increases yaw, dragging down raises the camera.
func (o *Orbit) MouseMove(x, y int) {
	if !o.dragging {
		return
	}
	o.Yaw += float64(x-o.lastX) * dragSensitivity
	o.Pitch = clampPitch(o.Pitch + float64(y-o.lastY)*dragSensitivity)
	o.lastX, o.lastY = x, y
}

func (o *Orbit) MouseUp() {
	o.dragging = false
}

func (o *Orbit) Dragging() bool {
	return o.dragging
}

// Wheel zooms one step; positive delta moves the camera away.
func (o *Orbit) Wheel(delta float64) {
	switch {
	case delta > 0:
		o.Radius += zoomStep
	case delta < 0:
		o.Radius -= zoomStep
	default:
		return
	}
	o.Radius = math.Max(minOrbitDistance, math.Min(maxOrbitDistance, o.Radius))
}

func (o *Orbit) Resize(width, height int) {
	o.Width, o.Height = width, height
}

// Position is the camera position for the current yaw, pitch and radius.
func (o *Orbit) Position() lighthouse.Vector {
	return lighthouse.V(
		o.Radius*math.Sin(o.Yaw)*math.Cos(o.Pitch),
		orbitHeight+o.Radius*math.Sin(o.Pitch),
		o.Radius*math.Cos(o.Yaw)*math.Cos(o.Pitch),
	)
}

// Apply points camera along the orbit.
func (o *Orbit) Apply(camera *lighthouse.Camera) {
	camera.Position = o.Position()
	camera.LookAt(cameraTarget)
	if o.Width > 0 && o.Height > 0 {
		camera.Aspect = float64(o.Width) / float64(o.Height)
	}
}
