package movement

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/movegraph/movegraph/core"
)

// Sentinel errors for zone ingest.
var (
	// ErrBadGeoJSON indicates the zone file failed to decode.
	ErrBadGeoJSON = errors.New("movement: malformed zone GeoJSON")

	// ErrMissingZoneID indicates a feature without a MOVEMENT_ID property.
	ErrMissingZoneID = errors.New("movement: feature is missing MOVEMENT_ID")

	// ErrBadGeometry indicates a feature geometry that is not polygonal.
	ErrBadGeometry = errors.New("movement: zone geometry must be Polygon or MultiPolygon")
)

// movementIDProperty is the zone key used across Uber Movement exports.
const movementIDProperty = "MOVEMENT_ID"

// Zone is one city zone from the Movement boundary file.
type Zone struct {
	ID       string
	Name     string
	Geometry orb.MultiPolygon
	Centroid orb.Point
}

// LoadZones decodes a Movement zone-boundary GeoJSON feature collection.
// Each feature must carry a MOVEMENT_ID property (string or numeric) and
// polygonal geometry; DISPLAY_NAME is kept when present. Centroids are
// precomputed for spatial weighting.
func LoadZones(r io.Reader) ([]Zone, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("movement: reading zone file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}

	zones := make([]Zone, 0, len(fc.Features))
	for i, f := range fc.Features {
		id, ok := movementID(f)
		if !ok {
			return nil, fmt.Errorf("%w: feature %d", ErrMissingZoneID, i)
		}

		var mp orb.MultiPolygon
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{geom}
		case orb.MultiPolygon:
			mp = geom
		default:
			return nil, fmt.Errorf("%w: feature %d (%s)", ErrBadGeometry, i, id)
		}

		centroid, _ := planar.CentroidArea(mp)

		zones = append(zones, Zone{
			ID:       id,
			Name:     f.Properties.MustString("DISPLAY_NAME", ""),
			Geometry: mp,
			Centroid: centroid,
		})
	}

	return zones, nil
}

// movementID extracts the MOVEMENT_ID property, accepting the string and
// numeric encodings seen across city exports.
func movementID(f *geojson.Feature) (string, bool) {
	v, ok := f.Properties[movementIDProperty]
	if !ok {
		return "", false
	}

	switch id := v.(type) {
	case string:
		return id, id != ""
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	default:
		return "", false
	}
}

// SpatialNetwork builds the undirected zone-adjacency graph: two zones
// are connected when their boundaries touch or overlap, and the edge
// weight is the haversine central angle between their centroids (radians
// on the unit sphere, matching the original pipeline's distances).
// Zone centroids are stored in vertex metadata under "lon"/"lat".
//
// Complexity: O(Z² · ring points) pairwise adjacency testing; fine at
// city scale (hundreds of zones).
func SpatialNetwork(zones []Zone) (*core.Graph, error) {
	g := core.NewGraph()

	for _, z := range zones {
		if z.ID == "" {
			return nil, ErrMissingZoneID
		}
		if err := g.AddVertex(z.ID); err != nil {
			return nil, fmt.Errorf("movement: zone %q: %w", z.ID, err)
		}
		if v, ok := g.Vertex(z.ID); ok {
			v.Metadata["lon"] = z.Centroid[0]
			v.Metadata["lat"] = z.Centroid[1]
			if z.Name != "" {
				v.Metadata["name"] = z.Name
			}
		}
	}

	for i := 0; i < len(zones); i++ {
		for j := i + 1; j < len(zones); j++ {
			if !zonesTouch(zones[i].Geometry, zones[j].Geometry) {
				continue
			}
			w := haversine(zones[i].Centroid, zones[j].Centroid)
			if err := g.AddEdge(zones[i].ID, zones[j].ID, w); err != nil {
				return nil, fmt.Errorf("movement: edge %s-%s: %w", zones[i].ID, zones[j].ID, err)
			}
		}
	}

	return g, nil
}

// zonesTouch reports whether two zone geometries share any point:
// bounding boxes must intersect, then either a ring vertex of one lies
// inside the other or some pair of ring segments crosses.
func zonesTouch(a, b orb.MultiPolygon) bool {
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for _, poly := range a {
		for _, ring := range poly {
			for _, pt := range ring {
				if planar.MultiPolygonContains(b, pt) {
					return true
				}
			}
		}
	}
	for _, poly := range b {
		for _, ring := range poly {
			for _, pt := range ring {
				if planar.MultiPolygonContains(a, pt) {
					return true
				}
			}
		}
	}

	return ringsCross(a, b)
}

// ringsCross tests segment-segment intersection across the outer rings of
// two multipolygons.
func ringsCross(a, b orb.MultiPolygon) bool {
	for _, pa := range a {
		if len(pa) == 0 {
			continue
		}
		ra := pa[0]
		for _, pb := range b {
			if len(pb) == 0 {
				continue
			}
			rb := pb[0]
			for i := 0; i+1 < len(ra); i++ {
				for j := 0; j+1 < len(rb); j++ {
					if segmentsIntersect(ra[i], ra[i+1], rb[j], rb[j+1]) {
						return true
					}
				}
			}
		}
	}

	return false
}

// segmentsIntersect reports whether segments pq and rs intersect,
// boundary contact included.
func segmentsIntersect(p, q, r, s orb.Point) bool {
	d1 := cross(r, s, p)
	d2 := cross(r, s, q)
	d3 := cross(p, q, r)
	d4 := cross(p, q, s)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && onSegment(r, s, p)) ||
		(d2 == 0 && onSegment(r, s, q)) ||
		(d3 == 0 && onSegment(p, q, r)) ||
		(d4 == 0 && onSegment(p, q, s))
}

// cross returns the orientation of point c relative to segment ab.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// onSegment reports whether collinear point c lies within segment ab.
func onSegment(a, b, c orb.Point) bool {
	return math.Min(a[0], b[0]) <= c[0] && c[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= c[1] && c[1] <= math.Max(a[1], b[1])
}

// haversine returns the great-circle central angle between two lon/lat
// points in radians (unit sphere; multiply by Earth's radius for meters).
func haversine(a, b orb.Point) float64 {
	lat1 := a[1] * math.Pi / 180
	lat2 := b[1] * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b[0] - a[0]) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Asin(math.Min(1, math.Sqrt(h)))
}
