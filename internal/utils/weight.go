package utils

import "math"

// RoundToPlate rounds a weight to the nearest 2.5kg, the smallest plate
// increment the plans work in.
func RoundToPlate(weight float64) float64 {
	return math.Round(weight/2.5) * 2.5
}

// CalculateEpley1RM estimates a one-rep max from a multi-rep set.
func CalculateEpley1RM(weight float64, reps int) float64 {
	if reps == 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}
