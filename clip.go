package lighthouse

// clipPlanes are the six faces of the clip-space view volume, expressed as
// signed distances that are non-negative inside.
var clipPlanes = []func(VectorW) float64{
	func(v VectorW) float64 { return v.W - v.X },
	func(v VectorW) float64 { return v.W + v.X },
	func(v VectorW) float64 { return v.W - v.Y },
	func(v VectorW) float64 { return v.W + v.Y },
	func(v VectorW) float64 { return v.W - v.Z },
	func(v VectorW) float64 { return v.W + v.Z },
}

func lerpVertex(a, b Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = a.Position.Lerp(b.Position, t)
	v.World = a.World.Lerp(b.World, t)
	v.Normal = a.Normal.Lerp(b.Normal, t).Normalize()
	v.Texture = a.Texture.Lerp(b.Texture, t)
	v.Color = a.Color.Lerp(b.Color, t)
	v.Output = a.Output.Add(b.Output.Sub(a.Output).MulScalar(t))
	return v
}

// sutherlandHodgman clips a convex polygon against every clip plane.
func sutherlandHodgman(points []Vertex) []Vertex {
	output := points
	for _, distance := range clipPlanes {
		input := output
		output = nil
		if len(input) == 0 {
			return nil
		}
		s := input[len(input)-1]
		ds := distance(s.Output)
		for _, e := range input {
			de := distance(e.Output)
			if de >= 0 {
				if ds < 0 {
					output = append(output, lerpVertex(s, e, ds/(ds-de)))
				}
				output = append(output, e)
			} else if ds >= 0 {
				output = append(output, lerpVertex(s, e, ds/(ds-de)))
			}
			s, ds = e, de
		}
	}
	return output
}

// ClipTriangle clips a triangle with shaded vertices to the view volume and
// fans the remaining polygon back into triangles.
func ClipTriangle(t *Triangle) []*Triangle {
	points := sutherlandHodgman([]Vertex{t.V1, t.V2, t.V3})
	var result []*Triangle
	for i := 2; i < len(points); i++ {
		result = append(result, &Triangle{points[0], points[i-1], points[i]})
	}
	return result
}
