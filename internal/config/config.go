package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL string

	// Twilio
	// SID/Tokenが未設定の場合もエラーにはせず、SMS送信機能のみを無効化する。
	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	// OpenAI
	// 未設定の場合はAIコンパニオン機能のみを無効化する。
	OpenAIAPIKey string

	// Delivery
	TickInterval      time.Duration
	SendTimeout       time.Duration
	SendMaxConcurrent int

	// Rate Limit（req/min単位）
	RateLimitGeneral   int
	RateLimitSubscribe int

	// Server
	ServerPort string
	BaseURL    string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに.envファイルがあれば先に読み込む（なくてもエラーにしない）。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	// .envはローカル開発用。本番では環境変数を直接設定する。
	_ = godotenv.Load()

	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.TwilioSID = os.Getenv("TWILIO_SID")
	cfg.TwilioToken = os.Getenv("TWILIO_TOKEN")
	cfg.TwilioFrom = os.Getenv("TWILIO_FROM")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	cfg.TickInterval = getEnvDuration("TICK_INTERVAL", time.Minute)
	cfg.SendTimeout = getEnvDuration("SEND_TIMEOUT", 10*time.Second)
	cfg.SendMaxConcurrent = getEnvInt("SEND_MAX_CONCURRENT", 10)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitSubscribe = getEnvInt("RATE_LIMIT_SUBSCRIBE", 10)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

// SMSConfigured はTwilio資格情報が揃っているかを返す。
func (c *Config) SMSConfigured() bool {
	return c.TwilioSID != "" && c.TwilioToken != "" && c.TwilioFrom != ""
}

// AIConfigured はOpenAI資格情報が設定されているかを返す。
func (c *Config) AIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
