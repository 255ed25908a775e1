package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/netisu/lighthouse/diorama"
	"github.com/netisu/lighthouse/internal/config"
	"github.com/netisu/lighthouse/internal/termview"
	"github.com/netisu/lighthouse/internal/window"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// reloader is implemented by both viewers.
type reloader interface {
	Reload(opts diorama.Options)
}

// watch hot reloads the config file into v until ctx is done.
func (a *app) watch(ctx context.Context, v reloader) error {
	if a.configPath == "" {
		return errors.New("--watch needs --config")
	}
	go func() {
		err := config.Watch(ctx, a.configPath, func(c *config.Config) {
			v.Reload(c.Diorama())
		})
		if err != nil {
			slog.Error("config watch stopped", "path", a.configPath, "err", err)
		}
	}()
	return nil
}

func newViewCmd(a *app) *cobra.Command {
	var (
		scale int
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the animated diorama in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.build(cmd)
			if err != nil {
				return err
			}
			r := a.cfg.Render
			g := window.New(d, r.Width/max(scale, 1), r.Height/max(scale, 1))
			g.Scale = scale
			g.Supersample = r.Supersample

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if watch {
				if err := a.watch(ctx, g); err != nil {
					return err
				}
			}
			return window.Run(g, "Lighthouse", r.FPS)
		},
	}
	addSceneFlags(cmd)
	cmd.Flags().IntVar(&scale, "scale", 2, "window pixels per rendered pixel")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the scene when the config file changes")
	return cmd
}

func newTermCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Show the animated diorama in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.build(cmd)
			if err != nil {
				return err
			}
			v, err := termview.New(d, a.cfg.Render.FPS)
			if err != nil {
				return err
			}
			defer v.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if watch {
				if err := a.watch(ctx, v); err != nil {
					return err
				}
			}
			return v.Run(ctx)
		},
	}
	addSceneFlags(cmd)
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the scene when the config file changes")
	return cmd
}
