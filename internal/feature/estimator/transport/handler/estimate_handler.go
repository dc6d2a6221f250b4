// Package handler はestimatorフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lpclass_backend/internal/api"
	"lpclass_backend/internal/feature/estimator/domain"
	"lpclass_backend/internal/feature/estimator/domain/entity"
	"lpclass_backend/internal/feature/estimator/transport/http/dto"
)

// EstimatorUsecase は収益シミュレーションのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type EstimatorUsecase interface {
	Estimate(ctx context.Context, in entity.EstimateInputs) (entity.EstimateInputs, entity.EstimateResult, error)
}

// EstimateHandler は収益シミュレーションのHTTPリクエストを処理します。
type EstimateHandler struct {
	uc EstimatorUsecase
}

// NewEstimateHandler は新しい EstimateHandler を作成します。
func NewEstimateHandler(uc EstimatorUsecase) *EstimateHandler {
	return &EstimateHandler{uc: uc}
}

// Get はクエリパラメータから入力値を読み取り、計算結果をJSONで返します。
//
// エンドポイント例:
// GET /api/estimate?capital=1500000&baseAprPct=24&feeAprPct=12&priceChangePct=15&months=12
func (h *EstimateHandler) Get(c *gin.Context) {
	in := entity.DefaultInputs()
	verr := &domain.ValidationError{}

	parseFloatQuery(c, verr, "capital", &in.Capital)
	parseFloatQuery(c, verr, "baseAprPct", &in.BaseAprPct)
	parseFloatQuery(c, verr, "feeAprPct", &in.FeeAprPct)
	parseFloatQuery(c, verr, "priceChangePct", &in.PriceChangePct)
	if s, ok := c.GetQuery("months"); ok {
		m, err := strconv.Atoi(s)
		if err != nil {
			verr.Add("months", "must be an integer")
		}
		in.Months = m
	}

	if err := verr.OrNil(); err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, in)
}

// Post はJSONボディから入力値を読み取り、計算結果をJSONで返します。
func (h *EstimateHandler) Post(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	h.respond(c, req.ToInputs())
}

func (h *EstimateHandler) respond(c *gin.Context, in entity.EstimateInputs) {
	effective, result, err := h.uc.Estimate(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEstimateResponse(effective, result))
}

func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]api.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, api.FieldError{Field: f.Field, Reason: f.Reason})
		}
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: "invalid input", Fields: fields})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}

// parseFloatQuery はクエリパラメータが指定されていれば dst を上書きします。
func parseFloatQuery(c *gin.Context, verr *domain.ValidationError, key string, dst *float64) {
	s, ok := c.GetQuery(key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		verr.Add(key, "must be a number")
		return
	}
	*dst = v
}
