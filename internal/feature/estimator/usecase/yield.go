// Package usecase はLP収益シミュレーターのビジネスロジックを実装します。
package usecase

import (
	"math"

	"lpclass_backend/internal/feature/estimator/domain/entity"
)

// ImpermanentLossFraction は定数積プールにおける、保有し続けた場合と比べた損失率を返します。
// priceRatio は 1 + 価格変動率/100 です。priceRatio <= 0 や NaN の場合は 0 を返します。
func ImpermanentLossFraction(priceRatio float64) float64 {
	if !(priceRatio > 0) {
		return 0
	}
	if math.IsInf(priceRatio, 1) {
		return 1
	}
	il := (2*math.Sqrt(priceRatio))/(1+priceRatio) - 1
	return math.Max(0, -il)
}

// MonthlyRate はAPR（%）を単利の月利（小数）に変換します。
func MonthlyRate(baseAprPct, feeAprPct float64) float64 {
	return (baseAprPct + feeAprPct) / 12 / 100
}

// Estimate は入力値から月利、推定月収、IL コスト、純月収を計算します。
// 副作用はなく、同じ入力には常に同じ結果を返します。
func Estimate(in entity.EstimateInputs) entity.EstimateResult {
	months := in.Months
	if months < 1 {
		months = 1
	}

	rate := MonthlyRate(in.BaseAprPct, in.FeeAprPct)
	income := in.Capital * rate
	ilFraction := ImpermanentLossFraction(1 + in.PriceChangePct/100)
	ilCost := in.Capital * ilFraction

	return entity.EstimateResult{
		MonthlyRate:             rate,
		EstMonthlyIncome:        income,
		ImpermanentLossFraction: ilFraction,
		ImpermanentLossCost:     ilCost,
		NetMonthlyEstimate:      math.Max(0, income-ilCost/float64(months)),
	}
}
