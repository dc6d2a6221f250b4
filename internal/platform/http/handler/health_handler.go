// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheBackend は現在使用中のキャッシュ種別を返します。
type CacheBackend interface {
	Backend() string
}

// PingFunc は依存サービスへの疎通を確認します。
type PingFunc func(ctx context.Context) error

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	cache CacheBackend
	ping  PingFunc
}

// NewHealthHandler は新しい HealthHandler を作成します。cache と ping は nil でも構いません。
func NewHealthHandler(cache CacheBackend, ping PingFunc) *HealthHandler {
	return &HealthHandler{cache: cache, ping: ping}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// キャッシュに到達できない場合もサービス自体は動作するため、200 で "degraded" を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	body := gin.H{"status": "ok"}
	if h.cache != nil {
		body["cache"] = h.cache.Backend()
	}
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			body["status"] = "degraded"
			body["error"] = err.Error()
		}
	}
	c.JSON(http.StatusOK, body)
}
