// Command lighthouse renders, exports and displays the lighthouse diorama.
package main

import (
	"log/slog"
	"os"

	"github.com/netisu/lighthouse/diorama"
	"github.com/netisu/lighthouse/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "lighthouse",
		Short:        "Procedural lighthouse diorama",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setupLogging(cmd); err != nil {
				return err
			}
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "settings file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(
		newRenderCmd(a),
		newExportCmd(a),
		newViewCmd(a),
		newTermCmd(a),
		newStatsCmd(a),
		newConfigCmd(a),
		newInspectCmd(),
	)
	return root
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return errors.Wrapf(err, "log level %q", a.logLevel)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func (a *app) loadConfig() error {
	if a.configPath == "" {
		a.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	slog.Debug("loaded config", "path", a.configPath)
	a.cfg = cfg
	return nil
}

// addSceneFlags registers flags that override the scene and render settings.
func addSceneFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("width", 0, "image width in pixels")
	f.Int("height", 0, "image height in pixels")
	f.Int("supersample", 0, "render this many times larger and filter down")
	f.String("shading", "", "phong or toon")
	f.Int64("seed", 0, "random seed for grass and rocks")
	f.Int("tiers", 0, "lattice tier count")
}

// applySceneFlags copies explicitly set flags over the loaded config.
func (a *app) applySceneFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	ints := map[string]*int{
		"width":       &a.cfg.Render.Width,
		"height":      &a.cfg.Render.Height,
		"supersample": &a.cfg.Render.Supersample,
		"tiers":       &a.cfg.Tower.TierCount,
	}
	for name, dst := range ints {
		if f.Lookup(name) != nil && f.Changed(name) {
			v, err := f.GetInt(name)
			if err != nil {
				return err
			}
			*dst = v
		}
	}
	if f.Lookup("shading") != nil && f.Changed("shading") {
		a.cfg.Render.Shading, _ = f.GetString("shading")
	}
	if f.Lookup("seed") != nil && f.Changed("seed") {
		a.cfg.Scene.Seed, _ = f.GetInt64("seed")
	}
	return a.cfg.Validate()
}

func (a *app) build(cmd *cobra.Command) (*diorama.Diorama, error) {
	if err := a.applySceneFlags(cmd); err != nil {
		return nil, err
	}
	return diorama.Build(a.cfg.Diorama())
}
