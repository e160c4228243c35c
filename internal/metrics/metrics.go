// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// 配信スケジューラーやサービス層から利用する。
type MetricsCollector interface {
	RecordDeliverySuccess(theme string)
	RecordDeliveryFailure(theme string, reason string)
	RecordDueMatched(count int)
	RecordTickDuration(duration time.Duration)
	RecordTickSkipped()
	RecordWelcomeSent()
	RecordWelcomeFailed()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	deliverySuccess *prometheus.CounterVec
	deliveryFail    *prometheus.CounterVec
	dueMatched      prometheus.Counter
	tickDuration    prometheus.Histogram
	tickSkipped     prometheus.Counter
	welcomeSent     prometheus.Counter
	welcomeFailed   prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		deliverySuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "morningword_delivery_success_total",
			Help: "配信SMS送信成功の合計数",
		}, []string{"theme"}),
		deliveryFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "morningword_delivery_fail_total",
			Help: "配信SMS送信失敗の合計数",
		}, []string{"theme", "reason"}),
		dueMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "morningword_due_matched_total",
			Help: "ティックで配信時刻に一致した購読者の合計数",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "morningword_tick_duration_seconds",
			Help:    "配信ティック1回の処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		tickSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "morningword_tick_skipped_total",
			Help: "前回ティックの処理中のためスキップされたティック数",
		}),
		welcomeSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "morningword_welcome_sent_total",
			Help: "ウェルカムSMS送信成功の合計数",
		}),
		welcomeFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "morningword_welcome_fail_total",
			Help: "ウェルカムSMS送信失敗の合計数",
		}),
	}

	reg.MustRegister(
		c.deliverySuccess,
		c.deliveryFail,
		c.dueMatched,
		c.tickDuration,
		c.tickSkipped,
		c.welcomeSent,
		c.welcomeFailed,
	)

	return c
}

// RecordDeliverySuccess は配信SMSの送信成功を記録する。
func (c *Collector) RecordDeliverySuccess(theme string) {
	c.deliverySuccess.WithLabelValues(theme).Inc()
}

// RecordDeliveryFailure は配信SMSの送信失敗を記録する。
func (c *Collector) RecordDeliveryFailure(theme string, reason string) {
	c.deliveryFail.WithLabelValues(theme, reason).Inc()
}

// RecordDueMatched は配信時刻に一致した購読者数を記録する。
func (c *Collector) RecordDueMatched(count int) {
	c.dueMatched.Add(float64(count))
}

// RecordTickDuration はティック1回の処理時間を記録する。
func (c *Collector) RecordTickDuration(duration time.Duration) {
	c.tickDuration.Observe(duration.Seconds())
}

// RecordTickSkipped はスキップされたティックを記録する。
func (c *Collector) RecordTickSkipped() {
	c.tickSkipped.Inc()
}

// RecordWelcomeSent はウェルカムSMSの送信成功を記録する。
func (c *Collector) RecordWelcomeSent() {
	c.welcomeSent.Inc()
}

// RecordWelcomeFailed はウェルカムSMSの送信失敗を記録する。
func (c *Collector) RecordWelcomeFailed() {
	c.welcomeFailed.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
