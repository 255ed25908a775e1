package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/netisu/lighthouse"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print triangle count and bounds of an exported .glb or .obj",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := loadExport(args[0])
			if err != nil {
				return err
			}
			box := mesh.BoundingBox()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "triangles: %d\n", len(mesh.Triangles))
			fmt.Fprintf(out, "min: %.3f %.3f %.3f\n", box.Min.X, box.Min.Y, box.Min.Z)
			fmt.Fprintf(out, "max: %.3f %.3f %.3f\n", box.Max.X, box.Max.Y, box.Max.Z)
			c := box.Center()
			fmt.Fprintf(out, "center: %.3f %.3f %.3f\n", c.X, c.Y, c.Z)
			return nil
		},
	}
}

func loadExport(path string) (*lighthouse.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return lighthouse.LoadGLTF(path)
	case ".obj":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open obj")
		}
		defer f.Close()
		return lighthouse.LoadOBJFromReader(f)
	}
	return nil, errors.Errorf("cannot inspect %q", path)
}
