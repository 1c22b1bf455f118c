package util

import "math"

// Round2 rounds to 2 decimal places. Used for money figures.
func Round2(f float64) float64 { return math.Round(f*100) / 100 }

// Round4 rounds to 4 decimal places. Used for rate figures (CPC, CPM).
func Round4(f float64) float64 { return math.Round(f*10000) / 10000 }
