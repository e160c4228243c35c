package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/morningword/internal/companion"
	"github.com/hitoshi/morningword/internal/metrics"
	"github.com/hitoshi/morningword/internal/middleware"
)

// HealthChecker はヘルスチェックで疎通確認する依存のインターフェース。
// *sql.DB のPingContextがこれを満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// 購読
	SubscriberService SubscriberServiceInterface

	// 受信SMS
	Responder CommandResponderInterface

	// 祈りのリクエスト
	PrayerService PrayerServiceInterface

	// AIコンパニオン
	Companion companion.Companion

	// 運用系
	HealthChecker HealthChecker
	Gatherer      prometheus.Gatherer
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → Logging → CORS → RateLimit(General)
//
// /health と /metrics はレート制限の外に配置する（監視系からの定期アクセスのため）。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	subscribeHandler := NewSubscribeHandler(deps.SubscriberService)
	smsHandler := NewSMSHandler(deps.Responder, deps.Logger)
	prayerHandler := NewPrayerHandler(deps.PrayerService)
	companionHandler := NewCompanionHandler(deps.Companion)

	// --- 運用系ルート（レート制限対象外） ---

	r.Get("/health", healthHandler(deps.HealthChecker))
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	// --- 公開APIルート ---
	// ミドルウェアスタック: RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// POST /api/subscribe - 購読登録（登録専用レート制限を追加）
		r.With(deps.RateLimiter.SubscribeMiddleware()).Post("/api/subscribe", subscribeHandler.Subscribe)

		r.Get("/api/stats", subscribeHandler.Stats)
		r.Get("/unsubscribe", subscribeHandler.Unsubscribe)

		// Twilio受信Webhook
		r.Post("/sms", smsHandler.Incoming)

		// 祈りのリクエスト掲示板
		r.Route("/api/prayers", func(r chi.Router) {
			r.Get("/", prayerHandler.List)
			r.Post("/", prayerHandler.Create)
			r.Post("/{id}/prayed", prayerHandler.Prayed)
		})

		// AIコンパニオン
		r.Post("/api/companion", companionHandler.Chat)
	})

	return r
}

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status string `json:"status"`
}

// healthHandler はDB疎通を含むヘルスチェックハンドラーを返す。
func healthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if checker != nil {
			if err := checker.PingContext(r.Context()); err != nil {
				slog.Error("health check database ping failed", slog.String("error", err.Error()))
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(healthResponse{Status: "unhealthy"})
				return
			}
		}

		json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
	}
}
