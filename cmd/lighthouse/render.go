package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/netisu/lighthouse/diorama"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		frames    int
		output    string
		fit       bool
		wireframe bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames of the animation to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("frames") {
				a.cfg.Render.Frames = frames
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Render.Output = output
			}
			d, err := a.build(cmd)
			if err != nil {
				return err
			}
			d.Scene.Wireframe = wireframe
			r := a.cfg.Render
			orbit := diorama.NewOrbit(r.Width, r.Height)
			var state diorama.RenderState
			cam := d.Scene.Camera

			for i := 0; i < r.Frames; i++ {
				state.Advance()
				orbit.Apply(cam)
				state.Apply(d, cam)
				if fit {
					d.Scene.FitCamera()
				}
				path := framePath(r.Output, i, r.Frames)
				if err := d.Scene.Draw(path, r.Width, r.Height, r.Supersample); err != nil {
					return err
				}
				slog.Info("wrote frame", "path", path, "tick", state.Tick)
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	addSceneFlags(cmd)
	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "number of animation ticks to render")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path")
	cmd.Flags().BoolVar(&fit, "fit", false, "narrow the field of view to the scene bounds")
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "draw triangle edges only")
	return cmd
}

// framePath numbers the output when more than one frame is written:
// out.png becomes out-0001.png, out-0002.png and so on.
func framePath(output string, i, frames int) string {
	if frames <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(output, ext), i+1, ext)
}
