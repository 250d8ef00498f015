// Package cli provides the movegraph command-line interface: load a
// Movement export, run one analysis, write results under the configured
// results directory.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/movegraph/movegraph/core"
	"github.com/movegraph/movegraph/internal/config"
	"github.com/movegraph/movegraph/movement"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	cfgPath string
	verbose bool

	// Loaded in PersistentPreRunE.
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "movegraph",
	Short: "Urban traffic flow analysis over Uber Movement exports",
	Long: `Movegraph turns Uber Movement exports into weighted graphs and runs
network analyses on them: hourly temporal networks from travel-time CSVs,
a spatial zone-adjacency network from the zone GeoJSON, and on top of
those HITS hub/authority scoring, weighted k-cores, k-trusses, and
clique-percolation communities.

Results are written as CSV and JSON files under the configured results
directory.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("cli: building logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "movegraph.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(spatialCmd)
	rootCmd.AddCommand(hitsCmd)
	rootCmd.AddCommand(kcoreCmd)
	rootCmd.AddCommand(communitiesCmd)
	rootCmd.AddCommand(trussCmd)
	rootCmd.AddCommand(rankCmd)
}

// hourlyNetwork loads the travel-time CSV and returns the directed
// network for one hour of day.
func hourlyNetwork(hour int) (*core.Graph, error) {
	if cfg.TravelTimes == "" {
		return nil, fmt.Errorf("cli: config is missing travel_times")
	}
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("cli: --hour %d: %w", hour, movement.ErrBadHour)
	}

	f, err := os.Open(cfg.TravelTimes)
	if err != nil {
		return nil, fmt.Errorf("cli: opening travel times: %w", err)
	}
	defer f.Close()

	records, err := movement.LoadTravelTimes(f)
	if err != nil {
		return nil, err
	}
	nets, err := movement.TemporalNetworks(records)
	if err != nil {
		return nil, err
	}

	g := nets[hour]
	logger.Info("loaded hourly network",
		zap.Int("hour", hour),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// resultPath places a file under the configured results directory.
func resultPath(name string) string {
	return filepath.Join(cfg.ResultsDir, name)
}
