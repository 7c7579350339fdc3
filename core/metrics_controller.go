package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	m "github.com/Johnmustcode/FinancialTools/models"
)

const maxRequestBytes = 10 << 20

func getFrequencies(w http.ResponseWriter, r *http.Request) {
	frequencies := m.GetFrequencies()
	writeJSON(w, http.StatusOK, m.GetServiceResponseOk(&frequencies))
}

func (sc *ServiceContext) postCompositeAnnualReturn(w http.ResponseWriter, r *http.Request) {
	var req m.CompositeReturnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError[m.TablePayload](w, http.StatusBadRequest, err)
		return
	}

	table, err := m.MapPayloadToTable(req.Table)
	if err != nil {
		writeError[m.TablePayload](w, http.StatusBadRequest, err)
		return
	}

	annualizationFactor := req.AnnualizationFactor
	if annualizationFactor == 0 {
		annualizationFactor = m.Monthly
	}
	if m.ConvertFrequencyToString(annualizationFactor) == "" {
		writeError[m.TablePayload](w, http.StatusBadRequest, fmt.Errorf("unsupported annualization factor %d", annualizationFactor))
		return
	}

	res, err := CalculateCompositeReturn(table, req.InputColumn, req.OutputColumn, annualizationFactor)
	if err != nil {
		sc.writeCalculationError(w, "composite annual return", err)
		return
	}

	sc.Log.Debug().
		Str("input_column", req.InputColumn).
		Str("output_column", req.OutputColumn).
		Int("rows", res.Len()).
		Int("annualization_factor", annualizationFactor).
		Msg("calculated composite annual return")

	payload := m.MapTableToPayload(res)
	writeJSON(w, http.StatusOK, m.GetServiceResponseOk(&payload))
}

func (sc *ServiceContext) postSharpeRatio(w http.ResponseWriter, r *http.Request) {
	var req m.SharpeRatioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError[m.TablePayload](w, http.StatusBadRequest, err)
		return
	}

	table, err := m.MapPayloadToTable(req.Table)
	if err != nil {
		writeError[m.TablePayload](w, http.StatusBadRequest, err)
		return
	}

	riskFreeRate := sc.Config.RiskFreeRate
	if req.RiskFreeRate != nil {
		riskFreeRate = *req.RiskFreeRate
	}

	res, err := CalculateSharpeRatio(table, req.InputColumn, riskFreeRate, req.OutputColumn)
	if err != nil {
		sc.writeCalculationError(w, "sharpe ratio", err)
		return
	}

	sc.Log.Debug().
		Str("input_column", req.InputColumn).
		Str("output_column", req.OutputColumn).
		Int("rows", res.Len()).
		Float64("risk_free_rate", riskFreeRate).
		Msg("calculated sharpe ratio")

	payload := m.MapTableToPayload(res)
	writeJSON(w, http.StatusOK, m.GetServiceResponseOk(&payload))
}

// writeCalculationError reports a failed metric. The only failure the metrics
// return is a lookup of an unknown input column, which is the caller's fault.
func (sc *ServiceContext) writeCalculationError(w http.ResponseWriter, metric string, err error) {
	sc.Log.Warn().Err(err).Str("metric", metric).Msg("error calculating metric")
	writeError[m.TablePayload](w, http.StatusBadRequest, err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid request body: unexpected data after json object")
	}
	return nil
}

func writeError[T any](w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, m.GetServiceResponseError[T](err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
