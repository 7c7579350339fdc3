package core

import (
	"gonum.org/v1/gonum/stat"

	ex "github.com/Johnmustcode/FinancialTools/extensions"
)

// GeometricMean is the n-th root of the product of the values. A zero value
// gives 0 and a negative value gives NaN.
func GeometricMean(values []float64) float64 {
	return stat.GeometricMean(values, nil)
}

func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// StdDev is the sample (n-1) standard deviation
func StdDev(values []float64) float64 {
	return stat.StdDev(values, nil)
}

// GrowthFactors converts periodic returns into 1 + r
func GrowthFactors(returns []float64) []float64 {
	return ex.Map(returns, func(r float64) float64 { return 1 + r })
}

// ExcessReturns subtracts the risk free rate from every periodic return
func ExcessReturns(returns []float64, riskFreeRate float64) []float64 {
	return ex.Map(returns, func(r float64) float64 { return r - riskFreeRate })
}
