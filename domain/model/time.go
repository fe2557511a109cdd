package model

import "math"

// FinalTimeSeconds converts a packed final time to elapsed seconds.
//
// The integer part carries minutes times 100 plus whole seconds, so 112.34
// is one minute 12.34 seconds and converts to 72.34. The result is rounded
// to hundredths, half away from zero. NaN propagates.
func FinalTimeSeconds(packed float64) float64 {
	minutes := math.Floor(packed / 100)
	return roundHundredths(minutes*60 + packed - minutes*100)
}

// FractionSeconds converts a packed fractional time to elapsed seconds.
//
// Fractions are stored as minutes times 10000 plus hundredths of a second,
// so 10234 is one minute 2.34 seconds and converts to 62.34. Rounding
// matches FinalTimeSeconds.
func FractionSeconds(packed float64) float64 {
	minutes := math.Floor(packed / 10000)
	return roundHundredths(minutes*60 + packed/100 - minutes*100)
}

func roundHundredths(x float64) float64 {
	return math.Round(x*100) / 100
}
