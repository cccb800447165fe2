package network

import "math"

// sigmoid is the logistic function, mapping any real to (0, 1).
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// sigmoidPrime is the sigmoid derivative expressed in terms of the
// sigmoid's own output: s'(x) = h*(1-h) where h = s(x).
func sigmoidPrime(h float64) float64 {
	return h * (1 - h)
}
