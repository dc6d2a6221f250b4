// Package dto defines data transfer objects for the Dexscreener API responses.
package dto

// PairsResponse represents the JSON response from /latest/dex/pairs/{chain}.
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Token is the baseToken / quoteToken object.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// TxnCount is the buys/sells counter of one window.
type TxnCount struct {
	Buys  int64 `json:"buys"`
	Sells int64 `json:"sells"`
}

// Pair is a single pair record. Optional objects are pointers because the API omits them.
type Pair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	URL         string `json:"url"`
	PairAddress string `json:"pairAddress"`
	BaseToken   Token  `json:"baseToken"`
	QuoteToken  Token  `json:"quoteToken"`
	PriceUSD    string `json:"priceUsd"`
	Txns        *struct {
		H24 *TxnCount `json:"h24"`
	} `json:"txns"`
	Volume *struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	Liquidity *struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
}
