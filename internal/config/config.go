package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultStoreDir        = "output/store"
	DefaultOutputFile      = "output/prompts.md"
	DefaultHTTPTimeout     = 15 * time.Second
	DefaultRefreshInterval = 30 * time.Second
	DefaultSeparator       = ", "
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	StoreDir         string
	ComponentDataURL string
	Separator        string
	HTTPTimeout      time.Duration
	RefreshInterval  time.Duration
	DisableNegative  bool

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		StoreDir:         envutil.GetEnv("PROMPT_STUDIO_STORE_DIR", DefaultStoreDir),
		ComponentDataURL: envutil.GetEnv("PROMPT_STUDIO_DATA_URL", ""),
		Separator:        envutil.GetEnv("PROMPT_STUDIO_SEPARATOR", DefaultSeparator),
		HTTPTimeout:      durationEnv("PROMPT_STUDIO_HTTP_TIMEOUT", DefaultHTTPTimeout),
		RefreshInterval:  durationEnv("PROMPT_STUDIO_REFRESH_INTERVAL", DefaultRefreshInterval),
		DisableNegative:  envutil.GetEnv("PROMPT_STUDIO_DISABLE_NEGATIVE", "") == "true",
	}
	return cfg
}

// durationEnv は環境変数を time.Duration として解釈するのだ。不正な値はデフォルトに退行するのだ。
func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 生成内容関連
	Subject     string   // --subject
	Gender      string   // --gender
	Custom      string   // --custom
	Mode        string   // --mode: disabled / random / no_figure_random
	TemplateID  string   // --template
	Quality     []string // --quality
	Seed        int64    // --seed
	SeedSet     bool     // --seed が明示されたかどうか
	AspectRatio string   // --aspect-ratio
	Negative    string   // --negative
	CharacterID string   // --character-preset

	// 出力関連
	OutputFile string // --output-file
	StoreDir   string // --store-dir

	// バッチ関連
	Count int      // --count
	Vary  []string // --vary
}
