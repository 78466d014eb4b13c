package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isotd/internal/terrain"
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Print terrain mesh statistics",
	Long: `Generate the terrain tile and print its triangle and vertex counts,
world-space bounds and centroid.

Examples:
  isotd mesh
  isotd mesh --size 3`,
	Args: cobra.NoArgs,
	RunE: runMesh,
}

func init() {
	meshCmd.Flags().IntVar(&flagSize, "size", 0, "Terrain tiles per side (0 = terrain.size from config)")
}

func runMesh(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("size") {
		cfg.Terrain.Size = flagSize
	}

	mesh, err := terrain.Generate(cfg.Terrain.Size, cfg.Terrain.CellSize)
	if err != nil {
		return err
	}

	lo, hi := mesh.Bounds()
	c := mesh.Centroid()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Terrain %dx%d (cell %g)\n\n", cfg.Terrain.Size, cfg.Terrain.Size, cfg.Terrain.CellSize)
	fmt.Fprintf(out, "  %-10s %d\n", "Triangles", mesh.TriangleCount())
	fmt.Fprintf(out, "  %-10s %d\n", "Vertices", mesh.VertexCount())
	fmt.Fprintf(out, "  %-10s [%.2f, %.2f, %.2f] .. [%.2f, %.2f, %.2f]\n", "Bounds", lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
	fmt.Fprintf(out, "  %-10s [%.2f, %.2f, %.2f]\n", "Centroid", c.X(), c.Y(), c.Z())
	return nil
}
