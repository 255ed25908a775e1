package lighthouse

// ToonStep maps lighting above Threshold to a fixed brightness.
type ToonStep struct {
	Threshold  float64
	Brightness float64
}

// ToonShader implements cel shading: the lambert term is snapped to a few
// brightness bands.
type ToonShader struct {
	transform
	Lights *Lights
	Fog    *Fog
	Steps  []ToonStep
}

func NewToonShader(camera *Camera, lights *Lights, fog *Fog) *ToonShader {
	return &ToonShader{
		transform: newTransform(camera),
		Lights:    lights,
		Fog:       fog,
		Steps: []ToonStep{
			{0.8, 1.0},  // highlight
			{0.5, 0.75}, // mid-tone
			{0.2, 0.5},  // shadow
			{0.0, 0.3},  // deep shadow
		},
	}
}

// band picks the step with the highest threshold below intensity, or the
// lowest step when intensity is under every threshold.
func (s *ToonShader) band(intensity float64) float64 {
	if len(s.Steps) == 0 {
		return intensity
	}
	best, lowest := -1, 0
	for i, step := range s.Steps {
		if step.Threshold < s.Steps[lowest].Threshold {
			lowest = i
		}
		if intensity > step.Threshold && (best < 0 || step.Threshold > s.Steps[best].Threshold) {
			best = i
		}
	}
	if best < 0 {
		best = lowest
	}
	return s.Steps[best].Brightness
}

func (s *ToonShader) Fragment(v Vertex, fromObject *Object) Color {
	m := materialOf(fromObject)
	distance := s.CameraPosition.Sub(v.World).Length()
	if m.Unlit {
		return s.Fog.Apply(m.Color.Alpha(m.Opacity), distance)
	}
	light := s.Lights.Irradiance(v.World, s.facing(v, m))
	intensity := (light.R + light.G + light.B) / 3
	c := m.Color.MulScalar(s.band(intensity)).Min(White).Alpha(m.Opacity)
	return s.Fog.Apply(c, distance)
}
