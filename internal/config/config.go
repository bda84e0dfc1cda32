package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port        string // サーバーポート（デフォルト5000）
	DatabaseURL string // 空ならインメモリSQLite
	GoEnv       string // dev/prod
}

// Loadは環境変数から設定を読む。全部デフォルトありなので失敗しない。
func Load() Config {
	return Config{
		Port:        getenv("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GoEnv:       getenv("GO_ENV", "dev"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
