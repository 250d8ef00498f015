// Package movement ingests Uber Movement exports and turns them into
// core graphs.
//
// Two dataset shapes are supported:
//
//   - Travel times: the "travel times by hour of day" CSV, one row per
//     (source zone, destination zone, hour) with the mean travel time in
//     seconds. LoadTravelTimes parses the rows; TemporalNetworks groups
//     them into 24 directed hourly graphs (the temporal slices).
//   - Zones: the city's zone-boundary GeoJSON keyed by the MOVEMENT_ID
//     feature property. LoadZones decodes the polygons; SpatialNetwork
//     connects zones whose boundaries touch or overlap, weighting each
//     edge with the haversine central angle between zone centroids
//     (radians on the unit sphere).
//
// Parsing is strict where it matters (missing columns, malformed numbers,
// out-of-range hours, negative travel times are reported with row
// context) and tolerant where the exports vary (extra CSV columns and
// extra GeoJSON properties are ignored; self pairs are skipped since
// self-loops carry no routing information).
package movement
