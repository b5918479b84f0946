package raptor

import "math"

// floorToSecond rounds t down to the nearest whole second, the
// granularity reported departure times are always expressed in.
func floorToSecond(t float64) float64 {
	return math.Floor(t)
}
