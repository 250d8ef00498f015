package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movegraph/movegraph/internal/config"
)

// writeConfig drops a config file next to a real dataset stub so the
// file-existence validation passes.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "movegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoad verifies parsing, the results_dir default, and path checks.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tt.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("sourceid,dstid,hod,mean_travel_time\n"), 0o644))

	cfg, err := config.Load(writeConfig(t, "travel_times: "+csvPath+"\n"))
	require.NoError(t, err)
	assert.Equal(t, csvPath, cfg.TravelTimes)
	assert.Equal(t, "results", cfg.ResultsDir, "results_dir defaults when omitted")
	assert.Empty(t, cfg.Zones)
}

// TestLoad_MissingDataset verifies a dangling travel_times path fails
// validation.
func TestLoad_MissingDataset(t *testing.T) {
	_, err := config.Load(writeConfig(t, "travel_times: /no/such/file.csv\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestLoad_BadFile verifies read and parse failures surface.
func TestLoad_BadFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "travel_times: [unterminated"))
	assert.Error(t, err)
}
