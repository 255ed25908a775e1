package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/netisu/lighthouse"
	"github.com/netisu/lighthouse/diorama"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format   string
		output   string
		simplify float64
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the diorama geometry as glTF binary or Wavefront OBJ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.build(cmd)
			if err != nil {
				return err
			}
			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			}
			if output == "" {
				output = "lighthouse." + format
			}
			// pose the scene as it appears on the first frame
			var state diorama.RenderState
			state.Apply(d, d.Scene.Camera)

			switch format {
			case "glb":
				err = lighthouse.SaveGLB(output, d.Scene.Root, lighthouse.GLBOptions{Simplify: simplify})
			case "obj":
				err = exportOBJ(output, d, simplify)
			default:
				return errors.Errorf("unknown export format %q", format)
			}
			if err != nil {
				return err
			}
			slog.Info("exported", "path", output, "format", format)
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	addSceneFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "glb or obj; defaults to the output extension")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path")
	cmd.Flags().Float64Var(&simplify, "simplify", 0, "keep this fraction of each mesh's triangles (0 keeps all)")
	return cmd
}

// exportOBJ writes the model and a material library next to it.
func exportOBJ(path string, d *diorama.Diorama, simplify float64) error {
	root := d.Scene.Root
	if simplify > 0 && simplify < 1 {
		root = simplified(root, simplify)
	}
	mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"

	obj, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create obj")
	}
	defer obj.Close()
	if err := lighthouse.WriteOBJ(obj, root, filepath.Base(mtlPath)); err != nil {
		return err
	}
	if err := obj.Close(); err != nil {
		return errors.Wrap(err, "close obj")
	}

	mtl, err := os.Create(mtlPath)
	if err != nil {
		return errors.Wrap(err, "create mtl")
	}
	defer mtl.Close()
	if err := lighthouse.WriteMTL(mtl, root); err != nil {
		return err
	}
	return errors.Wrap(mtl.Close(), "close mtl")
}

// simplified flattens root into world-space objects with reduced meshes.
func simplified(root *lighthouse.Object, factor float64) *lighthouse.Object {
	out := lighthouse.NewEmptyObject(root.Name)
	root.Walk(func(o *lighthouse.Object, world lighthouse.Matrix) {
		if o.Mesh == nil {
			return
		}
		m := o.Mesh.Copy()
		m.Transform(world)
		m.Simplify(factor)
		out.Add(lighthouse.NewObjectFromMesh(o.Name, m, o.Material))
	})
	return out
}
