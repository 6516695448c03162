package cascade

import "math"

// Round2 rounds to two decimal places, the precision every money column uses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Amount derives a line amount from quantity and rate. The result is always
// recomputed from its inputs, never trusted from the client.
func Amount(quantity, rate float64) float64 {
	return Round2(quantity * rate)
}
