package movement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/movegraph/movegraph/core"
)

// Sentinel errors for travel-time ingest.
var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("movement: missing required CSV column")

	// ErrBadRecord indicates a row failed to parse.
	ErrBadRecord = errors.New("movement: malformed travel-time record")

	// ErrBadHour indicates an hour-of-day outside 0-23.
	ErrBadHour = errors.New("movement: hour of day must be in 0..23")

	// ErrNegativeTravelTime indicates a negative mean travel time.
	ErrNegativeTravelTime = errors.New("movement: negative mean travel time")
)

// Required travel-time CSV columns (Uber Movement naming).
const (
	colSource = "sourceid"
	colDest   = "dstid"
	colHour   = "hod"
	colMean   = "mean_travel_time"
)

// TravelTime is one parsed row of the hourly travel-time export.
type TravelTime struct {
	Source      string
	Dest        string
	Hour        int
	MeanSeconds float64
}

// LoadTravelTimes parses an Uber Movement "travel times by hour of day"
// CSV. The header must contain sourceid, dstid, hod and mean_travel_time;
// extra columns are ignored. Self pairs (source == destination) are
// skipped. Parse failures report the offending line number.
func LoadTravelTimes(r io.Reader) ([]TravelTime, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("movement: reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range []string{colSource, colDest, colHour, colMean} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var out []TravelTime
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}

		src := rec[cols[colSource]]
		dst := rec[cols[colDest]]
		if src == dst {
			continue
		}

		hour, err := strconv.Atoi(rec[cols[colHour]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: hod %q", ErrBadRecord, line, rec[cols[colHour]])
		}
		if hour < 0 || hour > 23 {
			return nil, fmt.Errorf("%w: line %d: hod %d", ErrBadHour, line, hour)
		}

		mean, err := strconv.ParseFloat(rec[cols[colMean]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: mean_travel_time %q", ErrBadRecord, line, rec[cols[colMean]])
		}
		if mean < 0 {
			return nil, fmt.Errorf("%w: line %d", ErrNegativeTravelTime, line)
		}

		out = append(out, TravelTime{Source: src, Dest: dst, Hour: hour, MeanSeconds: mean})
	}

	return out, nil
}

// TemporalNetworks groups travel-time records into 24 directed hourly
// graphs keyed by hour of day. Every hour is present even when no record
// maps to it; duplicate (source, dest, hour) rows keep the last weight.
func TemporalNetworks(records []TravelTime) (map[int]*core.Graph, error) {
	nets := make(map[int]*core.Graph, 24)
	for h := 0; h < 24; h++ {
		nets[h] = core.NewGraph(core.WithDirected(true))
	}

	for i, rec := range records {
		if rec.Hour < 0 || rec.Hour > 23 {
			return nil, fmt.Errorf("%w: record %d: hod %d", ErrBadHour, i, rec.Hour)
		}
		if err := nets[rec.Hour].AddEdge(rec.Source, rec.Dest, rec.MeanSeconds); err != nil {
			return nil, fmt.Errorf("movement: record %d (%s→%s): %w", i, rec.Source, rec.Dest, err)
		}
	}

	return nets, nil
}
