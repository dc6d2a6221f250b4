// Package dto defines response bodies for the pairs endpoints.
package dto

import "lpclass_backend/internal/feature/pairs/domain/entity"

// TokenResponse mirrors the upstream token object.
type TokenResponse struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// TxnsResponse mirrors the upstream txns.h24 object.
type TxnsResponse struct {
	Buys  int64 `json:"buys"`
	Sells int64 `json:"sells"`
}

// PairResponse keeps the upstream field layout so existing page code can read it unchanged.
type PairResponse struct {
	ChainID     string        `json:"chainId"`
	DexID       string        `json:"dexId"`
	URL         string        `json:"url,omitempty"`
	PairAddress string        `json:"pairAddress"`
	BaseToken   TokenResponse `json:"baseToken"`
	QuoteToken  TokenResponse `json:"quoteToken"`
	PriceUSD    string        `json:"priceUsd,omitempty"`
	Volume      struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	Txns struct {
		H24 TxnsResponse `json:"h24"`
	} `json:"txns"`
	Liquidity struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	TxCount24h int64 `json:"txCount24h"`
}

// TopPairsResponse is the body of GET /api/sol-volume.
type TopPairsResponse struct {
	Pairs          []PairResponse `json:"pairs"`
	TotalVolume24h float64        `json:"totalVolume24h"`
}

// NewTopPairsResponse converts the domain ranking into the response body.
func NewTopPairsResponse(top entity.TopPairs) TopPairsResponse {
	out := TopPairsResponse{
		Pairs:          make([]PairResponse, 0, len(top.Pairs)),
		TotalVolume24h: top.TotalVolume24h,
	}
	for _, p := range top.Pairs {
		r := PairResponse{
			ChainID:     p.ChainID,
			DexID:       p.DexID,
			URL:         p.URL,
			PairAddress: p.PairAddress,
			BaseToken:   TokenResponse(p.BaseToken),
			QuoteToken:  TokenResponse(p.QuoteToken),
			PriceUSD:    p.PriceUSD,
			TxCount24h:  p.TxCount24h(),
		}
		r.Volume.H24 = p.Volume24h
		r.Txns.H24 = TxnsResponse{Buys: p.Buys24h, Sells: p.Sells24h}
		r.Liquidity.USD = p.LiquidityUSD
		out.Pairs = append(out.Pairs, r)
	}
	return out
}
