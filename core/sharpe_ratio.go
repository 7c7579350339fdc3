package core

import (
	"fmt"

	m "github.com/Johnmustcode/FinancialTools/models"
)

// CalculateSharpeRatio writes (mean(returns - riskFreeRate) / std(returns)) into
// every row of outputColumn on a copy of the table.
//
// The standard deviation is taken over the raw returns, not the excess returns.
// Nothing is annualized, so riskFreeRate has to be in the same period as the
// returns. A zero standard deviation gives Inf or NaN.
func CalculateSharpeRatio(table *m.Table, inputColumn string, riskFreeRate float64, outputColumn string) (*m.Table, error) {
	returns, err := table.Column(inputColumn)
	if err != nil {
		return nil, fmt.Errorf("error calculating sharpe ratio: %w", err)
	}

	meanExcessReturn := Mean(ExcessReturns(returns, riskFreeRate))
	stdDeviation := StdDev(returns)

	res := table.Copy()
	res.Broadcast(outputColumn, meanExcessReturn/stdDeviation)
	return res, nil
}
