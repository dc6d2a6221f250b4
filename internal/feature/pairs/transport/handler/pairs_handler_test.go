package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lpclass_backend/internal/feature/pairs/domain"
	"lpclass_backend/internal/feature/pairs/domain/entity"
)

// mockPairsUsecase はPairsUsecaseインターフェースのモック実装です。
type mockPairsUsecase struct {
	TopPairsFunc func(ctx context.Context) (entity.TopPairs, error)
}

func (m *mockPairsUsecase) TopPairs(ctx context.Context) (entity.TopPairs, error) {
	if m.TopPairsFunc != nil {
		return m.TopPairsFunc(ctx)
	}
	return entity.TopPairs{}, nil
}

func TestNewPairsHandler(t *testing.T) {
	t.Parallel()

	h := NewPairsHandler(&mockPairsUsecase{})
	assert.NotNil(t, h)
	assert.NotNil(t, h.uc)
}

// TestPairsHandler_TopByVolume は各種シナリオのステータスとボディをテーブル駆動テストで検証します。
func TestPairsHandler_TopByVolume(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockTopPairs   func(ctx context.Context) (entity.TopPairs, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns ranked pairs",
			mockTopPairs: func(ctx context.Context) (entity.TopPairs, error) {
				return entity.TopPairs{
					Pairs: []entity.Pair{{
						ChainID:      "solana",
						DexID:        "raydium",
						PairAddress:  "pair1",
						BaseToken:    entity.Token{Address: "So111", Name: "Wrapped SOL", Symbol: "SOL"},
						QuoteToken:   entity.Token{Address: "EPjF", Name: "USD Coin", Symbol: "USDC"},
						PriceUSD:     "150.12",
						Volume24h:    1234567.5,
						Buys24h:      120,
						Sells24h:     80,
						LiquidityUSD: 900000,
					}},
					TotalVolume24h: 1234567.5,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"pairs":[{
				"chainId":"solana","dexId":"raydium","pairAddress":"pair1",
				"baseToken":{"address":"So111","name":"Wrapped SOL","symbol":"SOL"},
				"quoteToken":{"address":"EPjF","name":"USD Coin","symbol":"USDC"},
				"priceUsd":"150.12",
				"volume":{"h24":1234567.5},
				"txns":{"h24":{"buys":120,"sells":80}},
				"liquidity":{"usd":900000},
				"txCount24h":200}],
				"totalVolume24h":1234567.5}`,
		},
		{
			name: "success: no pairs",
			mockTopPairs: func(ctx context.Context) (entity.TopPairs, error) {
				return entity.TopPairs{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"pairs":[],"totalVolume24h":0}`,
		},
		{
			name: "failure: upstream non-2xx keeps the status",
			mockTopPairs: func(ctx context.Context) (entity.TopPairs, error) {
				return entity.TopPairs{}, fmt.Errorf("%w: %w", domain.ErrDataUnavailable,
					&domain.UpstreamStatusError{Source: "dexscreener", StatusCode: http.StatusTooManyRequests})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"upstream_not_ok"}`,
		},
		{
			name: "failure: transport error",
			mockTopPairs: func(ctx context.Context) (entity.TopPairs, error) {
				return entity.TopPairs{}, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, errors.New("dial tcp: timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"proxy_failed","message":"pair data unavailable: dial tcp: timeout"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPairsHandler(&mockPairsUsecase{TopPairsFunc: tt.mockTopPairs})
			router := gin.New()
			router.GET("/api/sol-volume", h.TopByVolume)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/sol-volume", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
