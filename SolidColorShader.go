package lighthouse

// SolidColorShader renders the material color without lighting, only fogged.
type SolidColorShader struct {
	transform
	Fog *Fog
}

func NewSolidColorShader(camera *Camera, fog *Fog) *SolidColorShader {
	return &SolidColorShader{newTransform(camera), fog}
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	m := materialOf(fromObject)
	return s.Fog.Apply(m.Color.Alpha(m.Opacity), s.CameraPosition.Sub(v.World).Length())
}
