package movement_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movegraph/movegraph/movement"
)

const sampleCSV = `sourceid,dstid,hod,mean_travel_time,standard_deviation_travel_time
1,2,8,310.5,40.1
2,1,8,295.0,38.7
1,3,8,120.25,10.0
3,3,8,999.0,1.0
1,2,17,400.0,55.5
`

// Four corner zones on a 2x2 grid: 1 and 2 share a vertical border,
// 1 and 3 share a horizontal border, 1 and 4 touch only at the corner
// point (1,1), and 2/3 likewise meet only at that corner.
const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"MOVEMENT_ID": "1", "DISPLAY_NAME": "Northwest"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,1],[1,1],[1,2],[0,2],[0,1]]]}},
    {"type": "Feature", "properties": {"MOVEMENT_ID": "2"},
     "geometry": {"type": "Polygon", "coordinates": [[[1,1],[2,1],[2,2],[1,2],[1,1]]]}},
    {"type": "Feature", "properties": {"MOVEMENT_ID": 3},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
    {"type": "Feature", "properties": {"MOVEMENT_ID": "4"},
     "geometry": {"type": "MultiPolygon", "coordinates": [[[[1,0],[2,0],[2,1],[1,1],[1,0]]]]}}
  ]
}`

// TestLoadTravelTimes verifies header-driven parsing, self-pair skipping
// and extra-column tolerance.
func TestLoadTravelTimes(t *testing.T) {
	records, err := movement.LoadTravelTimes(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// The 3→3 self pair is dropped.
	require.Len(t, records, 4)
	assert.Equal(t, movement.TravelTime{Source: "1", Dest: "2", Hour: 8, MeanSeconds: 310.5}, records[0])
	assert.Equal(t, movement.TravelTime{Source: "1", Dest: "2", Hour: 17, MeanSeconds: 400.0}, records[3])
}

// TestLoadTravelTimes_MissingColumn verifies the header check names the
// absent column.
func TestLoadTravelTimes_MissingColumn(t *testing.T) {
	_, err := movement.LoadTravelTimes(strings.NewReader("sourceid,dstid,hod\n1,2,8\n"))
	require.ErrorIs(t, err, movement.ErrMissingColumn)
	assert.Contains(t, err.Error(), "mean_travel_time")
}

// TestLoadTravelTimes_BadRows verifies malformed values and out-of-range
// hours fail with line context.
func TestLoadTravelTimes_BadRows(t *testing.T) {
	header := "sourceid,dstid,hod,mean_travel_time\n"

	_, err := movement.LoadTravelTimes(strings.NewReader(header + "1,2,notanhour,5\n"))
	require.ErrorIs(t, err, movement.ErrBadRecord)
	assert.Contains(t, err.Error(), "line 2")

	_, err = movement.LoadTravelTimes(strings.NewReader(header + "1,2,24,5\n"))
	assert.ErrorIs(t, err, movement.ErrBadHour)

	_, err = movement.LoadTravelTimes(strings.NewReader(header + "1,2,8,-5\n"))
	assert.ErrorIs(t, err, movement.ErrNegativeTravelTime)
}

// TestTemporalNetworks verifies all 24 hourly slices exist and rows land
// in the right slice with the right direction and weight.
func TestTemporalNetworks(t *testing.T) {
	records, err := movement.LoadTravelTimes(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	nets, err := movement.TemporalNetworks(records)
	require.NoError(t, err)
	require.Len(t, nets, 24)

	for h := 0; h < 24; h++ {
		require.NotNil(t, nets[h], "hour %d", h)
		assert.True(t, nets[h].Directed())
	}

	w, ok := nets[8].Weight("1", "2")
	require.True(t, ok)
	assert.Equal(t, 310.5, w)

	w, ok = nets[8].Weight("2", "1")
	require.True(t, ok)
	assert.Equal(t, 295.0, w)

	assert.False(t, nets[8].HasEdge("2", "3"))
	assert.True(t, nets[17].HasEdge("1", "2"))
	assert.Equal(t, 0, nets[0].EdgeCount())
}

// TestLoadZones verifies GeoJSON decoding, numeric and string
// MOVEMENT_ID handling, and centroid placement.
func TestLoadZones(t *testing.T) {
	zones, err := movement.LoadZones(strings.NewReader(sampleGeoJSON))
	require.NoError(t, err)
	require.Len(t, zones, 4)

	assert.Equal(t, "1", zones[0].ID)
	assert.Equal(t, "Northwest", zones[0].Name)
	assert.Equal(t, "3", zones[2].ID, "numeric MOVEMENT_ID is normalized")

	// Unit-square centroids land at the cell centers.
	assert.InDelta(t, 0.5, zones[0].Centroid[0], 1e-9)
	assert.InDelta(t, 1.5, zones[0].Centroid[1], 1e-9)
	assert.InDelta(t, 0.5, zones[2].Centroid[0], 1e-9)
	assert.InDelta(t, 0.5, zones[2].Centroid[1], 1e-9)
}

// TestLoadZones_Errors verifies decode and property failures.
func TestLoadZones_Errors(t *testing.T) {
	_, err := movement.LoadZones(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, movement.ErrBadGeoJSON)

	noID := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","properties":{},
	   "geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}]}`
	_, err = movement.LoadZones(strings.NewReader(noID))
	assert.ErrorIs(t, err, movement.ErrMissingZoneID)

	pointGeom := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","properties":{"MOVEMENT_ID":"9"},
	   "geometry":{"type":"Point","coordinates":[0,0]}}]}`
	_, err = movement.LoadZones(strings.NewReader(pointGeom))
	assert.ErrorIs(t, err, movement.ErrBadGeometry)
}

// TestSpatialNetwork verifies touch adjacency, symmetry via the
// undirected graph, absence of self edges, and haversine weighting.
func TestSpatialNetwork(t *testing.T) {
	zones, err := movement.LoadZones(strings.NewReader(sampleGeoJSON))
	require.NoError(t, err)

	g, err := movement.SpatialNetwork(zones)
	require.NoError(t, err)

	assert.False(t, g.Directed())
	assert.Equal(t, 4, g.VertexCount())

	// Every zone pair on the 2x2 grid shares at least the center point.
	assert.True(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("1", "3"))
	assert.True(t, g.HasEdge("2", "4"))
	assert.True(t, g.HasEdge("3", "4"))
	assert.True(t, g.HasEdge("1", "4"), "corner contact counts as touching")
	assert.False(t, g.HasEdge("1", "1"))

	// Centroids of zones 1 (0.5, 1.5) and 3 (0.5, 0.5) are one degree of
	// latitude apart: central angle = 1 degree in radians.
	w, ok := g.Weight("1", "3")
	require.True(t, ok)
	assert.InDelta(t, 1.0*3.14159265358979/180, w, 1e-6)

	// Diagonal neighbors sit farther apart than side neighbors.
	diag, ok := g.Weight("1", "4")
	require.True(t, ok)
	assert.Greater(t, diag, w)

	v, ok := g.Vertex("1")
	require.True(t, ok)
	assert.InDelta(t, 0.5, v.Metadata["lon"].(float64), 1e-9)
	assert.InDelta(t, 1.5, v.Metadata["lat"].(float64), 1e-9)
	assert.Equal(t, "Northwest", v.Metadata["name"])
}
