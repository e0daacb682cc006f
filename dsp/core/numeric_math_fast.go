//go:build fastmath

package core

import "github.com/meko-christian/algo-approx"

// ln10 is the natural logarithm of 10, used for log base conversions.
const ln10 = 2.30258509299404568401799145468

// mathLog10 computes log10(x) using fast approximation.
func mathLog10(x float64) float64 {
	return approx.FastLog(x) / ln10
}

// mathPower10 computes 10^x using fast approximation.
func mathPower10(x float64) float64 {
	return approx.FastExp(x * ln10)
}
