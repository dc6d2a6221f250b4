package usecase

import (
	"math"

	"lpclass_backend/internal/feature/estimator/domain"
	"lpclass_backend/internal/feature/estimator/domain/entity"
)

// Range は閉区間 [Min, Max] を表します。
type Range struct {
	Min float64
	Max float64
}

func (r Range) clamp(v float64) float64 {
	return math.Min(r.Max, math.Max(r.Min, v))
}

// Bounds は各入力値の許容範囲です。
type Bounds struct {
	Capital        Range
	BaseAprPct     Range
	FeeAprPct      Range
	PriceChangePct Range
	Months         Range
}

// SliderBounds はランディングページのスライダーと同じ範囲です。
var SliderBounds = Bounds{
	Capital:        Range{Min: 500_000, Max: 10_000_000},
	BaseAprPct:     Range{Min: 5, Max: 60},
	FeeAprPct:      Range{Min: 0, Max: 50},
	PriceChangePct: Range{Min: -50, Max: 100},
	Months:         Range{Min: 1, Max: 24},
}

// Validate は計算に渡せない入力値を検出します。
// 問題のあるフィールドはすべて *domain.ValidationError にまとめて返します。
func Validate(in entity.EstimateInputs) error {
	verr := &domain.ValidationError{}

	switch {
	case !finite(in.Capital):
		verr.Add("capital", "must be a finite number")
	case in.Capital <= 0:
		verr.Add("capital", "must be greater than 0")
	}
	checkPct(verr, "baseAprPct", in.BaseAprPct)
	checkPct(verr, "feeAprPct", in.FeeAprPct)
	if !finite(in.PriceChangePct) {
		verr.Add("priceChangePct", "must be a finite number")
	}
	if in.Months < 1 {
		verr.Add("months", "must be at least 1")
	}

	return verr.OrNil()
}

// Clamp は各フィールドを b の範囲に丸めます。
func Clamp(in entity.EstimateInputs, b Bounds) entity.EstimateInputs {
	return entity.EstimateInputs{
		Capital:        b.Capital.clamp(in.Capital),
		BaseAprPct:     b.BaseAprPct.clamp(in.BaseAprPct),
		FeeAprPct:      b.FeeAprPct.clamp(in.FeeAprPct),
		PriceChangePct: b.PriceChangePct.clamp(in.PriceChangePct),
		Months:         int(b.Months.clamp(float64(in.Months))),
	}
}

func checkPct(verr *domain.ValidationError, field string, v float64) {
	switch {
	case !finite(v):
		verr.Add(field, "must be a finite number")
	case v < 0:
		verr.Add(field, "must not be negative")
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
