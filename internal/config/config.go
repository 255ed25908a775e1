// Package config loads lighthouse settings from TOML or YAML files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/netisu/lighthouse/diorama"
	"github.com/netisu/lighthouse/tower"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full set of settings. Files only need to name the values
// they change; everything else keeps its default.
type Config struct {
	Tower  tower.TowerSpec `toml:"tower" yaml:"tower"`
	Render Render          `toml:"render" yaml:"render"`
	Scene  Scene           `toml:"scene" yaml:"scene"`
}

type Render struct {
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Supersample int    `toml:"supersample" yaml:"supersample"`
	Frames      int    `toml:"frames" yaml:"frames"`
	Output      string `toml:"output" yaml:"output"`
	Shading     string `toml:"shading" yaml:"shading"`
	FPS         int    `toml:"fps" yaml:"fps"`
}

type Scene struct {
	Seed            int64   `toml:"seed" yaml:"seed"`
	GrassPatches    int     `toml:"grass_patches" yaml:"grass_patches"`
	Rocks           int     `toml:"rocks" yaml:"rocks"`
	StarFacesCamera bool    `toml:"star_faces_camera" yaml:"star_faces_camera"`
	FogDensity      float64 `toml:"fog_density" yaml:"fog_density"`
}

var shadings = []string{"", "phong", "lambert", "toon"}

func Default() *Config {
	opts := diorama.DefaultOptions()
	return &Config{
		Tower: opts.Tower,
		Render: Render{
			Width:       800,
			Height:      600,
			Supersample: 2,
			Frames:      1,
			Output:      "lighthouse.png",
			FPS:         30,
		},
		Scene: Scene{
			Seed:            opts.Seed,
			GrassPatches:    opts.GrassPatches,
			Rocks:           opts.Rocks,
			StarFacesCamera: opts.StarFacesCamera,
			FogDensity:      opts.FogDensity,
		},
	}
}

// Diorama returns the scene build options.
func (c *Config) Diorama() diorama.Options {
	return diorama.Options{
		Tower:           c.Tower,
		Seed:            c.Scene.Seed,
		GrassPatches:    c.Scene.GrassPatches,
		Rocks:           c.Scene.Rocks,
		StarFacesCamera: c.Scene.StarFacesCamera,
		FogDensity:      c.Scene.FogDensity,
		Shading:         c.Render.Shading,
	}
}

func (c *Config) Validate() error {
	if err := c.Diorama().Validate(); err != nil {
		return err
	}
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Errorf("render size %dx%d", r.Width, r.Height)
	}
	if r.Supersample < 1 {
		return errors.Errorf("supersample %d < 1", r.Supersample)
	}
	if r.Frames < 1 {
		return errors.Errorf("frames %d < 1", r.Frames)
	}
	if r.FPS < 1 {
		return errors.Errorf("fps %d < 1", r.FPS)
	}
	for _, s := range shadings {
		if r.Shading == s {
			return nil
		}
	}
	return errors.Errorf("unknown shading %q", r.Shading)
}

// Format is the file format implied by the path extension.
func Format(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", errors.Errorf("unsupported config format %q", filepath.Ext(path))
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	format, err := Format(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	c, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return c, nil
}

// Decode reads a config in the given format over the defaults. Unknown keys
// are errors.
func Decode(r io.Reader, format string) (*Config, error) {
	c := Default()
	switch format {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", format)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode writes c in the given format.
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode toml")
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(c); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	}
	return errors.Errorf("unsupported config format %q", format)
}
