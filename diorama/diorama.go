// Package diorama assembles the lighthouse scene: ocean, rocky island,
// lattice lighthouse with its rotating beam, scattered rocks and the nautical
// star behind it.
package diorama

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/netisu/lighthouse"
	"github.com/netisu/lighthouse/tower"
)

const (
	oceanSize     = 100
	oceanSegments = 50
	groundRadius  = 12

	platformThickness = 0.8
	lanternHeight     = 1.0
	glassHeight       = 3.0
	lampOffset        = 2.5 // bulb and lights above the platform

	beamLength = 50
	beamRadius = 30 // radius of the circle swept by the spot target
	targetY    = 15
)

var (
	cameraStart  = lighthouse.V(20, 12, 20)
	cameraTarget = lighthouse.V(0, 8, 0)
)

// Diorama is a built scene together with handles to the parts that animate.
type Diorama struct {
	Options Options
	Scene   *lighthouse.Scene
	Lattice *tower.Lattice

	Lighthouse *lighthouse.Object
	Ocean      *lighthouse.Object
	BeamGroup  *lighthouse.Object
	Star       *lighthouse.Object
	Spot       *lighthouse.SpotLight
}

// Build lays out the whole diorama.
func Build(opts Options) (*Diorama, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	lattice, err := tower.Build(opts.Tower)
	if err != nil {
		return nil, err
	}

	camera := lighthouse.NewCamera(cameraStart, cameraTarget, 60, 1, 0.1, 1000)
	scene := lighthouse.NewScene(camera)
	scene.Background = lighthouse.Hex(0x87CEEB)
	scene.Fog = &lighthouse.Fog{Color: lighthouse.Hex(0x8899aa), Density: opts.FogDensity}
	scene.Shading = opts.Shading
	scene.Lights.Ambient = []lighthouse.AmbientLight{{Color: lighthouse.White, Intensity: 0.6}}
	scene.Lights.Directional = []lighthouse.DirectionalLight{{
		Color: lighthouse.White, Intensity: 0.8, Position: lighthouse.V(15, 25, 15),
	}}

	d := &Diorama{Options: opts, Scene: scene, Lattice: lattice}
	rnd := rand.New(rand.NewSource(opts.Seed))

	d.Ocean = newOcean()
	scene.Add(d.Ocean)
	scene.Add(newGround(rnd, opts.GrassPatches)...)
	d.buildLighthouse()
	scene.Add(d.Lighthouse)
	scene.Add(newRocks(rnd, opts.Rocks)...)
	d.Star = newStar()
	scene.Add(d.Star)

	slog.Debug("built diorama",
		"beams", len(lattice.Beams), "skipped", lattice.Skipped,
		"triangles", scene.Stats().Triangles)
	return d, nil
}

// flat returns a lit material with faceted shading.
func flat(name string, hex uint32) *lighthouse.Material {
	m := lighthouse.NewLambertMaterial(name, lighthouse.Hex(hex))
	m.FlatShading = true
	return m
}

func mesh(name string, m *lighthouse.Mesh, mat *lighthouse.Material) *lighthouse.Object {
	if mat.FlatShading {
		m.FlatNormals()
	}
	return lighthouse.NewObjectFromMesh(name, m, mat)
}

func oceanHeight(x, y, phase float64) float64 {
	return math.Sin(x*0.3+phase)*math.Cos(y*0.3+phase)*0.4 + math.Sin(x*0.5-phase*0.7)*0.2
}

func newOcean() *lighthouse.Object {
	m := lighthouse.NewPlane(oceanSize, oceanSize, oceanSegments, oceanSegments)
	for _, t := range m.Triangles {
		for _, v := range []*lighthouse.Vertex{&t.V1, &t.V2, &t.V3} {
			v.Position.Z = math.Sin(v.Position.X*0.3) * math.Cos(v.Position.Y*0.3) * 0.3
		}
	}
	mat := flat("ocean", 0x1e90ff)
	mat.DoubleSided = true
	o := mesh("ocean", m, mat)
	o.SetEuler(-math.Pi/2, 0, 0)
	return o
}

func newGround(rnd *rand.Rand, patches int) []*lighthouse.Object {
	ground := mesh("ground", lighthouse.NewCircle(groundRadius, 32), flat("ground", 0x8B8B8B))
	ground.SetEuler(-math.Pi/2, 0, 0)
	ground.SetPosition(0, 0.05, 0)
	objects := []*lighthouse.Object{ground}

	grass := flat("grass", 0x4d8c4d)
	for i := 0; i < patches; i++ {
		size := 0.3 + rnd.Float64()*0.4
		angle := rnd.Float64() * 2 * math.Pi
		radius := 4 + rnd.Float64()*6
		patch := mesh(fmt.Sprintf("grass-%d", i), lighthouse.NewCircle(size, 6), grass)
		patch.SetPosition(math.Cos(angle)*radius, 0.08, math.Sin(angle)*radius)
		patch.SetEuler(-math.Pi/2, 0, 0)
		objects = append(objects, patch)
	}
	return objects
}

func (d *Diorama) buildLighthouse() {
	spec := d.Options.Tower
	top := spec.Height
	body := spec.Height - spec.GroundLevel
	g := lighthouse.NewEmptyObject("lighthouse")

	central := mesh("central", lighthouse.NewCylinder(1, 1.2, body, 8, false), flat("central", 0xD2B48C))
	central.SetPosition(0, spec.GroundLevel+body/2, 0)
	base := mesh("base", lighthouse.NewCylinder(1.2, 1.3, 1.5, 8, false), flat("base", 0x333333))
	base.SetPosition(0, spec.GroundLevel+0.75, 0)
	g.Add(central, base, newFrame(d.Lattice))

	platform := mesh("platform", lighthouse.NewCylinder(2, 2.2, platformThickness, 8, false), flat("platform", 0x444444))
	platform.SetPosition(0, top, 0)
	lanternMat := flat("lantern", 0x2a2a2a)
	lantern := mesh("lantern", lighthouse.NewCylinder(1.5, 1.6, lanternHeight, 8, false), lanternMat)
	lantern.SetPosition(0, top+platformThickness, 0)
	glassMat := flat("glass", 0x88aacc)
	glassMat.Opacity = 0.6
	glass := mesh("glass", lighthouse.NewCylinder(1.4, 1.4, glassHeight, 8, false), glassMat)
	glass.SetPosition(0, top+platformThickness+lanternHeight, 0)
	roof := mesh("roof", lighthouse.NewCylinder(0.2, 1.6, 1, 8, false), lanternMat)
	roof.SetPosition(0, top+platformThickness+lanternHeight+glassHeight/2+0.4, 0)
	g.Add(platform, lantern, glass, roof)

	lamp := top + lampOffset
	bulb := mesh("bulb", lighthouse.NewSphere(0.4, 8, 8), lighthouse.NewBasicMaterial("bulb", lighthouse.Hex(0xffff88)))
	bulb.SetPosition(0, lamp, 0)
	g.Add(bulb)

	d.Scene.Lights.Point = append(d.Scene.Lights.Point, &lighthouse.PointLight{
		Color: lighthouse.Hex(0xffff88), Intensity: 0.5, Position: lighthouse.V(0, lamp, 0),
		Distance: 15, Decay: 2,
	})
	d.Spot = &lighthouse.SpotLight{
		Color: lighthouse.Hex(0xffffcc), Intensity: 3,
		Position: lighthouse.V(0, lamp, 0), Target: lighthouse.V(beamRadius, targetY, 0),
		Distance: 80, Angle: math.Pi / 12, Penumbra: 0.3, Decay: 1,
	}
	d.Scene.Lights.Spot = append(d.Scene.Lights.Spot, d.Spot)

	beamMat := lighthouse.NewBasicMaterial("beam", lighthouse.Hex(0xffffaa))
	beamMat.Opacity = 0.08
	beamMat.DoubleSided = true
	beamMat.NoDepthWrite = true
	cone := mesh("beam", lighthouse.NewCone(beamLength*math.Tan(math.Pi/12), beamLength, 32, true), beamMat)
	cone.SetEuler(math.Pi/2, 0, math.Pi)
	cone.SetPosition(0, lamp, beamLength/2)
	d.BeamGroup = lighthouse.NewEmptyObject("beam-group")
	d.BeamGroup.Add(cone)
	g.Add(d.BeamGroup)

	d.Lighthouse = g
}

// newFrame instances one cylinder per lattice beam.
func newFrame(l *tower.Lattice) *lighthouse.Object {
	frame := lighthouse.NewEmptyObject("frame")
	mat := lighthouse.NewLambertMaterial("frame", lighthouse.Hex(0xaaaaaa))
	counts := map[tower.Kind]int{}
	for _, b := range l.Beams {
		p, ok := tower.Place(b)
		if !ok {
			continue
		}
		name := fmt.Sprintf("%s-%d", b.Kind, counts[b.Kind])
		counts[b.Kind]++
		o := lighthouse.NewObjectFromMesh(name, lighthouse.NewCylinder(p.Radius, p.Radius, p.Length, 6, false), mat)
		o.Position = lighthouse.VectorFrom(p.Midpoint)
		o.Rotation = lighthouse.QuatMatrix(p.Rotation)
		frame.Add(o)
	}
	return frame
}

func newRocks(rnd *rand.Rand, n int) []*lighthouse.Object {
	mat := flat("rock", 0x696969)
	rocks := make([]*lighthouse.Object, 0, n)
	for i := 0; i < n; i++ {
		size := 0.3 + rnd.Float64()*0.6
		angle := rnd.Float64() * 2 * math.Pi
		radius := 6 + rnd.Float64()*5
		rock := mesh(fmt.Sprintf("rock-%d", i), lighthouse.NewDodecahedron(size), mat)
		rock.SetPosition(math.Cos(angle)*radius, size*0.3, math.Sin(angle)*radius)
		rock.SetEuler(rnd.Float64()*math.Pi, rnd.Float64()*math.Pi, rnd.Float64()*math.Pi)
		rocks = append(rocks, rock)
	}
	return rocks
}

// StarPoints is the outline of the eight pointed compass star, alternating
// between the outer and inner radius and starting at the bottom point.
func StarPoints(points int, outer, inner float64) []lighthouse.Vector {
	outline := make([]lighthouse.Vector, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		outline = append(outline, lighthouse.V(math.Cos(a)*r, math.Sin(a)*r, 0))
	}
	return outline
}

func newStar() *lighthouse.Object {
	mat := lighthouse.NewBasicMaterial("star", lighthouse.Hex(0x1a3a5c))
	mat.Opacity = 0.7
	mat.DoubleSided = true
	mat.NoDepthWrite = true

	star := lighthouse.NewObjectFromMesh("star", lighthouse.NewPolygon(StarPoints(8, 12, 5)), mat)
	star.SetPosition(0, 10, 0)
	star.RenderOrder = -1

	outer := lighthouse.NewObjectFromMesh("star-ring-outer", lighthouse.NewRing(11.5, 12.5, 64), mat)
	inner := lighthouse.NewObjectFromMesh("star-ring-inner", lighthouse.NewRing(4.5, 5.5, 64), mat)
	outer.RenderOrder = -1
	inner.RenderOrder = -1
	star.Add(outer, inner)
	return star
}
