package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/movegraph/movegraph/export"
	"github.com/movegraph/movegraph/kcore"
)

var kcoreHour int

var kcoreCmd = &cobra.Command{
	Use:   "kcore",
	Short: "Compute weighted core numbers for one hourly network",
	Long: `Compute the weighted core number of every zone in the travel-time
network of one hour of day. Higher core numbers mark zones embedded in
denser, heavier-traffic neighborhoods.

Writes kcore_hour_<H>.csv.`,
	RunE: runKCore,
}

func init() {
	kcoreCmd.Flags().IntVar(&kcoreHour, "hour", 8, "hour of day (0-23)")
}

func runKCore(cmd *cobra.Command, args []string) error {
	g, err := hourlyNetwork(kcoreHour)
	if err != nil {
		return err
	}

	cores, err := kcore.CoreNumbers(g)
	if err != nil {
		return err
	}

	path := resultPath(fmt.Sprintf("kcore_hour_%02d.csv", kcoreHour))
	if err := export.ToFile(path, func(w io.Writer) error {
		return export.NodeMetricCSV(w, "core_number", cores)
	}); err != nil {
		return err
	}

	logger.Info("wrote results", zap.String("file", path), zap.Int("nodes", len(cores)))

	return nil
}
