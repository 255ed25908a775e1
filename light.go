package lighthouse

import "math"

type AmbientLight struct {
	Color     Color
	Intensity float64
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  Vector
}

// PointLight fades to nothing at Distance; zero Distance never fades.
type PointLight struct {
	Color     Color
	Intensity float64
	Position  Vector
	Distance  float64
	Decay     float64
}

// SpotLight lights a cone of half-angle Angle around the direction to
// Target. Penumbra is the fraction of the cone that is softened.
type SpotLight struct {
	Color     Color
	Intensity float64
	Position  Vector
	Target    Vector
	Distance  float64
	Angle     float64
	Penumbra  float64
	Decay     float64
}

// Fog is exponential squared fog.
type Fog struct {
	Color   Color
	Density float64
}

// Factor is the amount of fog at the given distance from the camera.
func (f *Fog) Factor(distance float64) float64 {
	if f == nil || f.Density == 0 {
		return 0
	}
	d := f.Density * distance
	return Clamp(1-math.Exp(-d*d), 0, 1)
}

func (f *Fog) Apply(c Color, distance float64) Color {
	t := f.Factor(distance)
	if t == 0 {
		return c
	}
	return c.Lerp(f.Color.Alpha(c.A), t)
}

type Lights struct {
	Ambient     []AmbientLight
	Directional []DirectionalLight
	Point       []*PointLight
	Spot        []*SpotLight
}

func distanceAttenuation(d, cutoff, decay float64) float64 {
	if cutoff <= 0 {
		return 1
	}
	if d >= cutoff {
		return 0
	}
	return math.Pow(Clamp(1-d/cutoff, 0, 1), math.Max(decay, 1))
}

// Irradiance sums the light reaching a surface point with normal n.
func (l *Lights) Irradiance(p, n Vector) Color {
	light := Color{}
	for _, a := range l.Ambient {
		light = light.Add(a.Color.MulScalar(a.Intensity))
	}
	for _, d := range l.Directional {
		diffuse := math.Max(n.Dot(d.Position.Normalize()), 0)
		light = light.Add(d.Color.MulScalar(d.Intensity * diffuse))
	}
	for _, pl := range l.Point {
		v := pl.Position.Sub(p)
		dist := v.Length()
		diffuse := math.Max(n.Dot(v.Normalize()), 0)
		att := distanceAttenuation(dist, pl.Distance, pl.Decay)
		light = light.Add(pl.Color.MulScalar(pl.Intensity * diffuse * att))
	}
	for _, s := range l.Spot {
		v := s.Position.Sub(p)
		dist := v.Length()
		dir := v.Normalize()
		axis := s.Position.Sub(s.Target).Normalize()
		cosOuter := math.Cos(s.Angle)
		cosInner := math.Cos(s.Angle * (1 - s.Penumbra))
		cone := smoothstep(cosOuter, cosInner, dir.Dot(axis))
		if cone == 0 {
			continue
		}
		diffuse := math.Max(n.Dot(dir), 0)
		att := distanceAttenuation(dist, s.Distance, s.Decay)
		light = light.Add(s.Color.MulScalar(s.Intensity * diffuse * att * cone))
	}
	light.A = 1
	return light
}

func smoothstep(lo, hi, x float64) float64 {
	if hi <= lo {
		if x >= lo {
			return 1
		}
		return 0
	}
	t := Clamp((x-lo)/(hi-lo), 0, 1)
	return t * t * (3 - 2*t)
}
