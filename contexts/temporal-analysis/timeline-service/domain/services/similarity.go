package services

import "math"

// SignatureSimilarity scores two astrological signatures in [0,1].
//
// For each body present in both signatures the angular difference is
// folded to the shorter arc (0..180 degrees) and mapped through a linear
// decay: identical longitudes score 1.0, antipodal longitudes 0.0. The
// result is the arithmetic mean over the common-body set. Empty or
// disjoint signatures score exactly 0.0.
func SignatureSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	total := 0.0
	common := 0
	for body, lonA := range a {
		lonB, ok := b[body]
		if !ok {
			continue
		}
		diff := math.Abs(math.Mod(lonA, 360) - math.Mod(lonB, 360))
		diff = math.Mod(diff, 360)
		if diff > 180 {
			diff = 360 - diff
		}
		total += 1.0 - diff/180.0
		common++
	}
	if common == 0 {
		return 0.0
	}
	return total / float64(common)
}
