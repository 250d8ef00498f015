package export_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movegraph/movegraph/core"
	"github.com/movegraph/movegraph/export"
)

// TestNodeMetricCSV verifies header naming and sorted rows.
func TestNodeMetricCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.NodeMetricCSV(&buf, "pagerank", map[string]float64{
		"B": 0.25,
		"A": 0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "node,pagerank\nA,0.5\nB,0.25\n", buf.String())

	assert.ErrorIs(t, export.NodeMetricCSV(nil, "x", nil), export.ErrNilWriter)
}

// TestHubAuthorityCSV verifies the key-set union with zero fill.
func TestHubAuthorityCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.HubAuthorityCSV(&buf,
		map[string]float64{"A": 1},
		map[string]float64{"B": 0.5},
	)
	require.NoError(t, err)

	assert.Equal(t, "node,hub,authority\nA,1,0\nB,0,0.5\n", buf.String())
}

// TestCommunitiesJSON verifies order preservation and valid JSON.
func TestCommunitiesJSON(t *testing.T) {
	var buf bytes.Buffer
	err := export.CommunitiesJSON(&buf, [][]string{{"A", "B", "C"}, {"D"}})
	require.NoError(t, err)

	var decoded [][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D"}}, decoded)
}

// TestLabelsJSON verifies the object round-trips.
func TestLabelsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := export.LabelsJSON(&buf, map[string]int{"A": 0, "B": 1})
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, decoded)
}

// TestEdgeListCSV verifies order preservation and weight formatting.
func TestEdgeListCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.EdgeListCSV(&buf, []core.Edge{
		{From: "A", To: "B", Weight: 1.5},
		{From: "B", To: "C", Weight: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "from,to,weight\nA,B,1.5\nB,C,2\n", buf.String())
}

// TestToFile verifies parent-directory creation and content delivery.
func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "degree.csv")

	err := export.ToFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("node,degree\n"))
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "node,degree\n", string(data))
}
