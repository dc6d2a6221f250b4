// Package entity defines the domain models for the pairs feature.
package entity

// Token identifies one side of a trading pair.
type Token struct {
	Address string
	Name    string
	Symbol  string
}

// Pair is a DEX trading pair with its 24h activity.
type Pair struct {
	ChainID      string  // e.g. "solana"
	DexID        string  // e.g. "raydium", "orca"
	URL          string  // Dexscreener page of the pair
	PairAddress  string
	BaseToken    Token
	QuoteToken   Token
	PriceUSD     string  // kept as the upstream decimal string
	Volume24h    float64 // 24h volume in USD
	Buys24h      int64
	Sells24h     int64
	LiquidityUSD float64
}

// TxCount24h returns the number of swaps in the last 24h.
func (p Pair) TxCount24h() int64 {
	return p.Buys24h + p.Sells24h
}

// TopPairs is the ranked subset of pairs shown on the page.
type TopPairs struct {
	Pairs          []Pair
	TotalVolume24h float64 // sum of Volume24h over Pairs
}
