package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/movegraph/movegraph/export"
	"github.com/movegraph/movegraph/movement"
)

var spatialCmd = &cobra.Command{
	Use:   "spatial",
	Short: "Build the zone-adjacency network from the zone GeoJSON",
	Long: `Build the spatial network: zones become vertices, zones whose
boundaries touch or overlap get an edge weighted by the haversine
distance between their centroids.

Writes spatial_edges.csv and spatial_degree.csv.`,
	RunE: runSpatial,
}

func runSpatial(cmd *cobra.Command, args []string) error {
	if cfg.Zones == "" {
		return fmt.Errorf("cli: config is missing zones")
	}

	f, err := os.Open(cfg.Zones)
	if err != nil {
		return fmt.Errorf("cli: opening zones: %w", err)
	}
	defer f.Close()

	zones, err := movement.LoadZones(f)
	if err != nil {
		return err
	}

	g, err := movement.SpatialNetwork(zones)
	if err != nil {
		return err
	}
	logger.Info("built spatial network",
		zap.Int("zones", g.VertexCount()),
		zap.Int("adjacencies", g.EdgeCount()))

	degrees := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		degrees[id] = g.WeightedDegree(id)
	}

	edgesPath := resultPath("spatial_edges.csv")
	if err := export.ToFile(edgesPath, func(w io.Writer) error {
		return export.EdgeListCSV(w, g.Edges())
	}); err != nil {
		return err
	}

	degreePath := resultPath("spatial_degree.csv")
	if err := export.ToFile(degreePath, func(w io.Writer) error {
		return export.NodeMetricCSV(w, "weighted_degree", degrees)
	}); err != nil {
		return err
	}

	logger.Info("wrote results",
		zap.String("edges", edgesPath),
		zap.String("degrees", degreePath))

	return nil
}
