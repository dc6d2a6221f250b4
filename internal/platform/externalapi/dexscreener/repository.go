package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"lpclass_backend/internal/feature/pairs/domain"
	"lpclass_backend/internal/feature/pairs/domain/entity"
	"lpclass_backend/internal/feature/pairs/usecase"
	"lpclass_backend/internal/platform/breaker"
	"lpclass_backend/internal/platform/externalapi/dexscreener/dto"
	"lpclass_backend/internal/shared/ratelimiter"
)

const sourceName = "dexscreener"

// Recorder は上流呼び出しの結果を記録します。
type Recorder interface {
	ObserveUpstream(source, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveUpstream(string, string, time.Duration) {}

// DexscreenerMarket はDexscreener APIから取引ペアを取得するPairRepository実装です。
type DexscreenerMarket struct {
	cfg      Config
	client   *http.Client
	limiter  ratelimiter.RateLimiterInterface
	breaker  *breaker.Breaker
	recorder Recorder
}

// DexscreenerMarketがPairRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PairRepository = (*DexscreenerMarket)(nil)

// Option はDexscreenerMarketの任意設定です。
type Option func(*DexscreenerMarket)

// WithRateLimiter は上流呼び出し前に待機するレートリミッターを設定します。
func WithRateLimiter(l ratelimiter.RateLimiterInterface) Option {
	return func(m *DexscreenerMarket) { m.limiter = l }
}

// WithBreaker はサーキットブレーカーを設定します。
func WithBreaker(b *breaker.Breaker) Option {
	return func(m *DexscreenerMarket) { m.breaker = b }
}

// WithRecorder はメトリクスの記録先を設定します。
func WithRecorder(r Recorder) Option {
	return func(m *DexscreenerMarket) { m.recorder = r }
}

// NewDexscreenerMarket は指定された設定とHTTPクライアントでDexscreenerMarketを生成します。
// レートリミッターとブレーカーは Option で指定しない限り使用しません。
func NewDexscreenerMarket(cfg Config, client *http.Client, opts ...Option) *DexscreenerMarket {
	m := &DexscreenerMarket{cfg: cfg, client: client, recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListPairs は指定チェーンの取引ペア一覧を取得します。
func (d *DexscreenerMarket) ListPairs(ctx context.Context, chain string) ([]entity.Pair, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	var (
		pairs []entity.Pair
		err   error
	)
	if d.breaker != nil {
		var v any
		v, err = d.breaker.Execute(func() (any, error) { return d.fetch(ctx, chain) })
		if err == nil {
			pairs = v.([]entity.Pair)
		}
	} else {
		pairs, err = d.fetch(ctx, chain)
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	d.recorder.ObserveUpstream(sourceName, outcome, time.Since(start))
	return pairs, err
}

func (d *DexscreenerMarket) fetch(ctx context.Context, chain string) ([]entity.Pair, error) {
	// URLを生成
	u := fmt.Sprintf("%s/latest/dex/pairs/%s", d.cfg.BaseURL, url.PathEscape(chain))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &domain.UpstreamStatusError{Source: sourceName, StatusCode: res.StatusCode}
	}

	// JSONレスポンスをDTOにデコード
	var body dto.PairsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode dexscreener pairs: %w", err)
	}

	pairs := make([]entity.Pair, 0, len(body.Pairs))
	for _, p := range body.Pairs {
		pairs = append(pairs, toEntity(p))
	}
	return pairs, nil
}

// toEntity はDTOをドメインエンティティに変換します。欠けているオブジェクトはゼロ値になります。
func toEntity(p dto.Pair) entity.Pair {
	out := entity.Pair{
		ChainID:     p.ChainID,
		DexID:       p.DexID,
		URL:         p.URL,
		PairAddress: p.PairAddress,
		BaseToken:   entity.Token(p.BaseToken),
		QuoteToken:  entity.Token(p.QuoteToken),
		PriceUSD:    p.PriceUSD,
	}
	if p.Volume != nil {
		out.Volume24h = p.Volume.H24
	}
	if p.Txns != nil && p.Txns.H24 != nil {
		out.Buys24h = p.Txns.H24.Buys
		out.Sells24h = p.Txns.H24.Sells
	}
	if p.Liquidity != nil {
		out.LiquidityUSD = p.Liquidity.USD
	}
	return out
}
