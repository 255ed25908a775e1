package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/netisu/lighthouse/tower"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// replaceFile swaps content in with a rename so watchers never see a
// truncated file.
func replaceFile(t *testing.T, path, content string) {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Error(err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Error(err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, tower.DefaultSpec(), c.Tower)
	assert.Equal(t, 40, c.Scene.GrassPatches)
	assert.Equal(t, 25, c.Scene.Rocks)
	assert.True(t, c.Scene.StarFacesCamera)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "lighthouse.toml", `
[tower]
tiers = 7
bottom_radius = 5.5

[render]
width = 320
height = 240
shading = "toon"

[scene]
seed = 7
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Tower.TierCount)
	assert.Equal(t, 5.5, c.Tower.BottomRadius)
	assert.Equal(t, 18.0, c.Tower.Height, "unset keys keep defaults")
	assert.Equal(t, 320, c.Render.Width)
	assert.Equal(t, "toon", c.Render.Shading)
	assert.Equal(t, 2, c.Render.Supersample)
	assert.Equal(t, int64(7), c.Scene.Seed)

	opts := c.Diorama()
	assert.Equal(t, c.Tower, opts.Tower)
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, "toon", opts.Shading)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "lighthouse.yml", `
scene:
  rocks: 3
  star_faces_camera: false
render:
  frames: 12
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Scene.Rocks)
	assert.False(t, c.Scene.StarFacesCamera)
	assert.Equal(t, 12, c.Render.Frames)
	assert.Equal(t, 40, c.Scene.GrassPatches)
}

func TestLoadEmptyYAML(t *testing.T) {
	c, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"extension", "lighthouse.ini", "width=1"},
		{"unknown toml key", "a.toml", "[render]\ncolour = 1\n"},
		{"unknown yaml key", "a.yaml", "render:\n  colour: 1\n"},
		{"bad toml", "a.toml", "[render\n"},
		{"zero width", "a.toml", "[render]\nwidth = 0\n"},
		{"supersample", "a.toml", "[render]\nsupersample = 0\n"},
		{"frames", "a.yaml", "render:\n  frames: 0\n"},
		{"fps", "a.yaml", "render:\n  fps: 0\n"},
		{"shading", "a.toml", "[render]\nshading = \"cel\"\n"},
		{"rocks", "a.toml", "[scene]\nrocks = -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTower(t *testing.T) {
	_, err := Load(writeFile(t, "a.toml", "[tower]\ntop_radius = 5\nbottom_radius = 4\n"))
	assert.True(t, errors.Is(err, tower.ErrInvalidSpec), "got %v", err)

	for _, body := range []string{
		"[tower]\nheight = nan\n",
		"[tower]\nbottom_radius = inf\n",
		"[tower]\nleg_thickness = -0.5\n",
	} {
		_, err = Load(writeFile(t, "b.toml", body))
		assert.True(t, errors.Is(err, tower.ErrInvalidSpec), "%q: got %v", body, err)
	}
}

func TestEncodeDecode(t *testing.T) {
	c := Default()
	c.Tower.TierCount = 9
	c.Render.Shading = "phong"
	for _, format := range []string{"toml", "yaml"} {
		var buf bytes.Buffer
		require.NoError(t, c.Encode(&buf, format))
		got, err := Decode(&buf, format)
		require.NoError(t, err, format)
		assert.Equal(t, c, got, format)
	}
	assert.Error(t, c.Encode(&bytes.Buffer{}, "json"))
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "live.toml", "[scene]\nrocks = 1\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	var got *Config
	for got == nil {
		select {
		case c := <-changes:
			if c.Scene.Rocks == 9 {
				got = c
			}
		case <-tick.C:
			// keep replacing the file until the watcher is registered
			replaceFile(t, path, "[scene]\nrocks = 9\n")
		case <-deadline:
			t.Fatal("no reload seen")
		}
	}
	assert.Equal(t, 9, got.Scene.Rocks)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchSkipsInvalidEdits(t *testing.T) {
	path := writeFile(t, "live.yaml", "scene:\n  rocks: 1\n")
	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel()

	var calls int
	go func() {
		time.Sleep(200 * time.Millisecond)
		replaceFile(t, path, "scene:\n  rocks: -1\n")
	}()
	require.NoError(t, Watch(ctx, path, func(*Config) { calls++ }))
	assert.Zero(t, calls)
}
