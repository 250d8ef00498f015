package centrality

// Normalize rescales a metric map to [0, 1] with min-max scaling:
// (v - min) / (max - min). A constant map (max == min) normalizes to all
// zeros. The input map is not modified.
func Normalize(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	if len(scores) == 0 {
		return out
	}

	lo, hi := bounds(scores)
	span := hi - lo
	for id, v := range scores {
		if span == 0 {
			out[id] = 0
			continue
		}
		out[id] = (v - lo) / span
	}

	return out
}

// NormalizeAcrossHours rescales a family of hourly metric maps with a
// single min-max range computed over every value of every hour, so scores
// stay comparable across temporal slices. The input maps are not
// modified.
func NormalizeAcrossHours(hourly map[int]map[string]float64) map[int]map[string]float64 {
	out := make(map[int]map[string]float64, len(hourly))

	lo, hi := 0.0, 0.0
	first := true
	for _, scores := range hourly {
		for _, v := range scores {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
	}
	span := hi - lo

	for hour, scores := range hourly {
		scaled := make(map[string]float64, len(scores))
		for id, v := range scores {
			if span == 0 {
				scaled[id] = 0
				continue
			}
			scaled[id] = (v - lo) / span
		}
		out[hour] = scaled
	}

	return out
}

func bounds(scores map[string]float64) (lo, hi float64) {
	first := true
	for _, v := range scores {
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}

	return lo, hi
}
