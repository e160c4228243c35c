// Package deliver は日次聖句SMSのバックグラウンド配信処理を提供する。
// 毎分のスケジューラ、配信実行、二重配信ガードを含む。
package deliver

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/hitoshi/morningword/internal/content"
	"github.com/hitoshi/morningword/internal/metrics"
	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/schedule"
	"github.com/hitoshi/morningword/internal/sms"
)

// MessageDeliverer は購読者1人分の配信実行インターフェース。
type MessageDeliverer interface {
	// Deliver は指定購読者へその日の聖句SMSを1通送信する。
	Deliver(ctx context.Context, sub *model.Subscriber, now time.Time) error
}

// Deliverer は配信メッセージの組み立てとSMS送信を行う。
type Deliverer struct {
	sender      sms.MessageSender
	collector   metrics.MetricsCollector
	logger      *slog.Logger
	sendTimeout time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewDeliverer はDelivererの新しいインスタンスを生成する。
// sendTimeoutが0以下の場合はデフォルト値10秒を使用する。
func NewDeliverer(sender sms.MessageSender, collector metrics.MetricsCollector, logger *slog.Logger, sendTimeout time.Duration) *Deliverer {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &Deliverer{
		sender:      sender,
		collector:   collector,
		logger:      logger,
		sendTimeout: sendTimeout,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Deliver は購読者の暦日に応じた聖句と挨拶を組み立ててSMSを送信する。
// 送信には個別のタイムアウトを設ける。
func (d *Deliverer) Deliver(ctx context.Context, sub *model.Subscriber, now time.Time) error {
	localNow, err := schedule.LocalTime(now, sub.Timezone)
	if err != nil {
		return fmt.Errorf("タイムゾーンの解決に失敗しました: %w", err)
	}

	verse := content.DailyVerse(sub.Theme, localNow)
	d.rngMu.Lock()
	body := content.DeliveryMessage(sub.Theme, verse, d.rng)
	d.rngMu.Unlock()

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, sub.Phone, body); err != nil {
		d.collector.RecordDeliveryFailure(string(sub.Theme), "send_error")
		return fmt.Errorf("配信SMSの送信に失敗しました: %w", err)
	}

	d.collector.RecordDeliverySuccess(string(sub.Theme))
	d.logger.Info("聖句を配信しました",
		slog.String("subscriber_id", sub.ID),
		slog.String("theme", string(sub.Theme)),
		slog.String("verse_ref", verse.Ref),
	)
	return nil
}

var _ MessageDeliverer = (*Deliverer)(nil)
