// Package dto defines request and response bodies for the estimator endpoints.
package dto

import "lpclass_backend/internal/feature/estimator/domain/entity"

// EstimateRequest は POST /api/estimate のリクエストボディです。
// 未指定のフィールドはページの初期値で補完されます。
type EstimateRequest struct {
	Capital        *float64 `json:"capital"`
	BaseAprPct     *float64 `json:"baseAprPct"`
	FeeAprPct      *float64 `json:"feeAprPct"`
	PriceChangePct *float64 `json:"priceChangePct"`
	Months         *int     `json:"months"`
}

// ToInputs はリクエストを entity.EstimateInputs に変換します。
func (r EstimateRequest) ToInputs() entity.EstimateInputs {
	in := entity.DefaultInputs()
	if r.Capital != nil {
		in.Capital = *r.Capital
	}
	if r.BaseAprPct != nil {
		in.BaseAprPct = *r.BaseAprPct
	}
	if r.FeeAprPct != nil {
		in.FeeAprPct = *r.FeeAprPct
	}
	if r.PriceChangePct != nil {
		in.PriceChangePct = *r.PriceChangePct
	}
	if r.Months != nil {
		in.Months = *r.Months
	}
	return in
}

// InputsResponse は計算に使われた入力値です。
type InputsResponse struct {
	Capital        float64 `json:"capital"`
	BaseAprPct     float64 `json:"baseAprPct"`
	FeeAprPct      float64 `json:"feeAprPct"`
	PriceChangePct float64 `json:"priceChangePct"`
	Months         int     `json:"months"`
}

// ResultResponse は計算結果です。
type ResultResponse struct {
	MonthlyRate             float64 `json:"monthlyRate"`
	EstMonthlyIncome        float64 `json:"estMonthlyIncome"`
	ImpermanentLossFraction float64 `json:"impermanentLossFraction"`
	ImpermanentLossCost     float64 `json:"impermanentLossCost"`
	NetMonthlyEstimate      float64 `json:"netMonthlyEstimate"`
}

// EstimateResponse は /api/estimate のレスポンスボディです。
type EstimateResponse struct {
	Inputs InputsResponse `json:"inputs"`
	Result ResultResponse `json:"result"`
}

// NewEstimateResponse はドメインの値からレスポンスを組み立てます。
func NewEstimateResponse(in entity.EstimateInputs, res entity.EstimateResult) EstimateResponse {
	return EstimateResponse{
		Inputs: InputsResponse{
			Capital:        in.Capital,
			BaseAprPct:     in.BaseAprPct,
			FeeAprPct:      in.FeeAprPct,
			PriceChangePct: in.PriceChangePct,
			Months:         in.Months,
		},
		Result: ResultResponse{
			MonthlyRate:             res.MonthlyRate,
			EstMonthlyIncome:        res.EstMonthlyIncome,
			ImpermanentLossFraction: res.ImpermanentLossFraction,
			ImpermanentLossCost:     res.ImpermanentLossCost,
			NetMonthlyEstimate:      res.NetMonthlyEstimate,
		},
	}
}
