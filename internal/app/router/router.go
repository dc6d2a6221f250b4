package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	estimatorhandler "lpclass_backend/internal/feature/estimator/transport/handler"
	pairshandler "lpclass_backend/internal/feature/pairs/transport/handler"
	platformhandler "lpclass_backend/internal/platform/http/handler"
	"lpclass_backend/internal/platform/http/middleware"
	"lpclass_backend/internal/platform/metrics"
)

// NewRouter はすべてのルートを登録した gin.Engine を作成します。
func NewRouter(health *platformhandler.HealthHandler, estimate *estimatorhandler.EstimateHandler,
	pairs *pairshandler.PairsHandler, m *metrics.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(nil))
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	api := r.Group("/api")
	{
		// 収益シミュレーター
		api.GET("/estimate", estimate.Get)
		api.POST("/estimate", estimate.Post)
		// Solana 24h出来高上位ペア（Dexscreener プロキシ）
		api.GET("/sol-volume", pairs.TopByVolume)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}
