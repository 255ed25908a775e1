package diorama

import (
	"github.com/netisu/lighthouse/tower"
	"github.com/pkg/errors"
)

// Options controls how the diorama is laid out.
type Options struct {
	Tower tower.TowerSpec
	// Seed makes the random placement of grass and rocks reproducible.
	Seed            int64
	GrassPatches    int
	Rocks           int
	StarFacesCamera bool
	FogDensity      float64
	Shading         string
}

func DefaultOptions() Options {
	return Options{
		Tower:           tower.DefaultSpec(),
		Seed:            1,
		GrassPatches:    40,
		Rocks:           25,
		StarFacesCamera: true,
		FogDensity:      0.025,
	}
}

func (o Options) Validate() error {
	if err := o.Tower.Validate(); err != nil {
		return err
	}
	if o.GrassPatches < 0 || o.Rocks < 0 {
		return errors.Errorf("negative scatter count: grass=%d rocks=%d", o.GrassPatches, o.Rocks)
	}
	if o.FogDensity < 0 {
		return errors.Errorf("negative fog density %g", o.FogDensity)
	}
	return nil
}
