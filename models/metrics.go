package models

import (
	"math"

	"github.com/guregu/null/v6"

	ex "github.com/Johnmustcode/FinancialTools/extensions"
)

// TablePayload is the wire form of a Table. JSON cannot carry NaN or Inf, so
// those travel as null and null comes back in as NaN.
type TablePayload struct {
	Columns []ColumnPayload `json:"columns"`
}

type ColumnPayload struct {
	Name   string       `json:"name"`
	Values []null.Float `json:"values"`
}

type CompositeReturnRequest struct {
	Table               TablePayload `json:"table"`
	InputColumn         string       `json:"inputColumn"`
	OutputColumn        string       `json:"outputColumn"`
	AnnualizationFactor int          `json:"annualizationFactor"` // periods per year, monthly when omitted
}

type SharpeRatioRequest struct {
	Table        TablePayload `json:"table"`
	InputColumn  string       `json:"inputColumn"`
	RiskFreeRate *float64     `json:"riskFreeRate"` // service default when omitted
	OutputColumn string       `json:"outputColumn"`
}

func MapTableToPayload(table *Table) TablePayload {
	return TablePayload{
		Columns: ex.Map(table.Columns(), func(c Column) ColumnPayload {
			return ColumnPayload{
				Name:   c.Name,
				Values: ex.Map(c.Values, toNullFloat),
			}
		}),
	}
}

func MapPayloadToTable(payload TablePayload) (*Table, error) {
	columns := ex.Map(payload.Columns, func(c ColumnPayload) Column {
		return Column{
			Name:   c.Name,
			Values: ex.Map(c.Values, fromNullFloat),
		}
	})
	return NewTable(columns...)
}

func toNullFloat(v float64) null.Float {
	return null.NewFloat(v, !math.IsNaN(v) && !math.IsInf(v, 0))
}

func fromNullFloat(v null.Float) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
