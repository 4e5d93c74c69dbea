package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um valor monetário para duas casas
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace arredonda para uma casa decimal
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
