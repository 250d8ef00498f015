// Package export serializes analysis results into plain data files:
// per-node metric CSVs, hub/authority CSVs, and community JSON. Rows are
// emitted in sorted vertex order so repeated runs produce byte-identical
// files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/movegraph/movegraph/core"
)

// ErrNilWriter indicates a nil destination.
var ErrNilWriter = errors.New("export: nil writer")

// NodeMetricCSV writes one metric map as "node,<metric>" rows sorted by
// node ID.
func NodeMetricCSV(w io.Writer, metric string, scores map[string]float64) error {
	if w == nil {
		return ErrNilWriter
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", metric}); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}

	for _, id := range sortedKeys(scores) {
		if err := cw.Write([]string{id, formatScore(scores[id])}); err != nil {
			return fmt.Errorf("export: writing row %s: %w", id, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// HubAuthorityCSV writes combined HITS output as "node,hub,authority"
// rows sorted by node ID. The union of both key sets is covered; a node
// missing from one map gets 0 in that column.
func HubAuthorityCSV(w io.Writer, hubs, authorities map[string]float64) error {
	if w == nil {
		return ErrNilWriter
	}

	ids := make(map[string]struct{}, len(hubs))
	for id := range hubs {
		ids[id] = struct{}{}
	}
	for id := range authorities {
		ids[id] = struct{}{}
	}

	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", "hub", "authority"}); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for _, id := range ordered {
		row := []string{id, formatScore(hubs[id]), formatScore(authorities[id])}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: writing row %s: %w", id, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CommunitiesJSON writes communities as a JSON array of member arrays,
// preserving the given order (largest first when produced by kclique).
func CommunitiesJSON(w io.Writer, communities [][]string) error {
	if w == nil {
		return ErrNilWriter
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(communities); err != nil {
		return fmt.Errorf("export: encoding communities: %w", err)
	}

	return nil
}

// LabelsJSON writes a vertex-to-label assignment as a JSON object with
// sorted keys (encoding/json sorts map keys).
func LabelsJSON(w io.Writer, labels map[string]int) error {
	if w == nil {
		return ErrNilWriter
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(labels); err != nil {
		return fmt.Errorf("export: encoding labels: %w", err)
	}

	return nil
}

// EdgeListCSV writes edges as "from,to,weight" rows in the order given
// (core.Graph.Edges already sorts them).
func EdgeListCSV(w io.Writer, edges []core.Edge) error {
	if w == nil {
		return ErrNilWriter
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"from", "to", "weight"}); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for _, e := range edges {
		if err := cw.Write([]string{e.From, e.To, formatScore(e.Weight)}); err != nil {
			return fmt.Errorf("export: writing edge %s-%s: %w", e.From, e.To, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToFile creates path (making parent directories as needed) and runs the
// given writer function against it.
//
//	err := export.ToFile(filepath.Join(dir, "hits.csv"), func(w io.Writer) error {
//	    return export.HubAuthorityCSV(w, hubs, auths)
//	})
func ToFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("export: closing %s: %w", path, err)
	}

	return nil
}

// formatScore renders a float with minimal digits that round-trip.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
