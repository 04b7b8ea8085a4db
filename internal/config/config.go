package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	AdminToken string // 管理APIの共有トークン

	StripeSecretKey     string // 決済プロバイダのAPIキー（空なら決済は無効）
	StripeWebhookSecret string // Webhook署名シークレット

	FrontendURL string // 決済後のリダイレクト先

	GoEnv string // dev/prod
}

// Loadは環境変数から読む。開発用デフォルトは本番で使わないこと
// （特にADMIN_TOKENのdevtoken）。
func Load() Config {
	return Config{
		Port:                getenv("PORT", "3000"),
		AdminToken:          getenv("ADMIN_TOKEN", "devtoken"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		FrontendURL:         getenv("FRONTEND_URL", "http://localhost:5173"),
		GoEnv:               getenv("GO_ENV", "dev"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
