package core

import (
	"fmt"
	"math"

	m "github.com/Johnmustcode/FinancialTools/models"
)

// CalculateCompositeAnnualReturn annualizes the monthly returns held in inputColumn
// and writes the result into every row of outputColumn on a copy of the table.
//
//	annual = geometric_mean(1 + r_i)^12 - 1
func CalculateCompositeAnnualReturn(table *m.Table, inputColumn, outputColumn string) (*m.Table, error) {
	return CalculateCompositeReturn(table, inputColumn, outputColumn, m.Monthly)
}

// CalculateCompositeReturn is CalculateCompositeAnnualReturn for returns sampled
// annualizationFactor times a year (see the frequencies in models).
func CalculateCompositeReturn(table *m.Table, inputColumn, outputColumn string, annualizationFactor int) (*m.Table, error) {
	returns, err := table.Column(inputColumn)
	if err != nil {
		return nil, fmt.Errorf("error calculating composite return: %w", err)
	}

	averageGrowth := GeometricMean(GrowthFactors(returns))
	annual := math.Pow(averageGrowth, float64(annualizationFactor)) - 1

	res := table.Copy()
	res.Broadcast(outputColumn, annual)
	return res, nil
}
