package diorama

import (
	"image"
)

// Frame runs one animation tick and renders the result at the orbit's size.
func Frame(d *Diorama, state *RenderState, orbit *Orbit, supersample int) (image.Image, error) {
	state.Advance()
	camera := d.Scene.Camera
	orbit.Apply(camera)
	state.Apply(d, camera)
	return d.Scene.Render(orbit.Width, orbit.Height, supersample)
}
