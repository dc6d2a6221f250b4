// Package handler はpairsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lpclass_backend/internal/api"
	"lpclass_backend/internal/feature/pairs/domain"
	"lpclass_backend/internal/feature/pairs/domain/entity"
	"lpclass_backend/internal/feature/pairs/transport/http/dto"
)

// PairsUsecase は取引ペアランキングのユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PairsUsecase interface {
	TopPairs(ctx context.Context) (entity.TopPairs, error)
}

// PairsHandler は取引ペアに関するHTTPリクエストを処理します。
type PairsHandler struct {
	uc PairsUsecase
}

// NewPairsHandler は新しい PairsHandler を作成します。
func NewPairsHandler(uc PairsUsecase) *PairsHandler {
	return &PairsHandler{uc: uc}
}

// TopByVolume は24時間出来高上位のペアを返します。
//
// 上流が2xx以外を返した場合は同じステータスで {"error":"upstream_not_ok"} を返し、
// それ以外の失敗は500 {"error":"proxy_failed"} を返します。
func (h *PairsHandler) TopByVolume(c *gin.Context) {
	top, err := h.uc.TopPairs(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "failed to load top pairs", "error", err)

		var statusErr *domain.UpstreamStatusError
		if errors.As(err, &statusErr) {
			c.JSON(statusErr.StatusCode, api.ErrorResponse{Error: "upstream_not_ok"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "proxy_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewTopPairsResponse(top))
}
