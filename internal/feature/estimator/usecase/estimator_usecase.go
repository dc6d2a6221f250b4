package usecase

import (
	"context"
	"log/slog"

	"lpclass_backend/internal/feature/estimator/domain/entity"
)

// EstimatorUsecase は入力検証・範囲丸め・計算をまとめたユースケースです。
type EstimatorUsecase struct {
	bounds *Bounds
}

// NewEstimatorUsecase は新しい EstimatorUsecase を作成します。
// bounds が nil の場合は範囲丸めを行いません。
func NewEstimatorUsecase(bounds *Bounds) *EstimatorUsecase {
	return &EstimatorUsecase{bounds: bounds}
}

// Estimate は入力を検証し、必要に応じて範囲内に丸めてから計算します。
// 返り値の EstimateInputs は実際に計算に使われた値です。
func (u *EstimatorUsecase) Estimate(ctx context.Context, in entity.EstimateInputs) (entity.EstimateInputs, entity.EstimateResult, error) {
	if err := Validate(in); err != nil {
		return in, entity.EstimateResult{}, err
	}

	effective := in
	if u.bounds != nil {
		effective = Clamp(in, *u.bounds)
		if effective != in {
			slog.DebugContext(ctx, "estimate inputs clamped", "requested", in, "effective", effective)
		}
	}

	return effective, Estimate(effective), nil
}
