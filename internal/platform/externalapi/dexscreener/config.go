// Package dexscreener はDexscreener公開APIのクライアントを提供します。
package dexscreener

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.dexscreener.com"
	defaultChain   = "solana"
	defaultRPM     = 60
	// UserAgent は上流に送るUser-Agentです。
	UserAgent = "lp-memecoin-class"
)

// Config はDexscreener APIクライアントの設定を保持します。
type Config struct {
	BaseURL           string        // APIのベースURL（例: "https://api.dexscreener.com"）
	Chain             string        // 対象チェーン（例: "solana"）
	RequestsPerMinute int           // 1分あたりのリクエスト上限
	Timeout           time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からDexscreenerの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		BaseURL:           os.Getenv("DEXSCREENER_BASE_URL"),
		Chain:             os.Getenv("DEXSCREENER_CHAIN"),
		RequestsPerMinute: defaultRPM,
		Timeout:           10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Chain == "" {
		cfg.Chain = defaultChain
	}
	if v, err := strconv.Atoi(os.Getenv("DEXSCREENER_RPM")); err == nil && v > 0 {
		cfg.RequestsPerMinute = v
	}
	return cfg
}
