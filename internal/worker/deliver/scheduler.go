package deliver

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hitoshi/morningword/internal/metrics"
	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/repository"
	"github.com/hitoshi/morningword/internal/schedule"
)

// minuteBucket は二重配信ガードのキー粒度。
const minuteBucket = "2006-01-02T15:04"

// Scheduler は日次配信のスケジューリングと並列制御を行う。
// 毎分のティッカーで配信対象の購読者を判定し、semaphoreパターンで
// 最大並列数を制御しながら配信を実行する。
//
// 二重配信ガードを2段で持つ:
//   - ティック処理が分を跨いで長引いた場合、次のティックは実行せずスキップする
//   - 購読者ごとに最後に配信した分バケットを記録し、同一分内の再配信を抑止する
type Scheduler struct {
	subRepo        repository.SubscriberRepository
	deliverer      MessageDeliverer
	collector      metrics.MetricsCollector
	logger         *slog.Logger
	maxConcurrency int

	// running はティック処理の直列化フラグ。
	running atomic.Bool

	// lastDelivered は購読者IDごとの最終配信分バケット。
	mu            sync.Mutex
	lastDelivered map[string]string
}

// NewScheduler はSchedulerの新しいインスタンスを生成する。
// maxConcurrencyが0以下の場合はデフォルト値10を使用する。
func NewScheduler(
	subRepo repository.SubscriberRepository,
	deliverer MessageDeliverer,
	collector metrics.MetricsCollector,
	logger *slog.Logger,
	maxConcurrency int,
) *Scheduler {
	if maxConcurrency <= 0 {
		maxConcurrency = 10
	}
	return &Scheduler{
		subRepo:        subRepo,
		deliverer:      deliverer,
		collector:      collector,
		logger:         logger,
		maxConcurrency: maxConcurrency,
		lastDelivered:  make(map[string]string),
	}
}

// Start は毎分のティッカーでスケジューラを起動する。
// 最初のティックを分境界に揃えてから開始し、コンテキストが
// キャンセルされるまで実行を継続する。
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	s.logger.Info("配信スケジューラを開始しました",
		slog.Duration("interval", interval),
		slog.Int("max_concurrency", s.maxConcurrency),
	)

	// 分境界まで待ってからティッカーを開始する。
	// 配信判定は分単位の文字列一致のため、分の先頭で評価するのが自然になる。
	select {
	case <-ctx.Done():
		s.logger.Info("配信スケジューラを停止しました")
		return
	case <-time.After(untilNextMinute(time.Now())):
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("配信スケジューラを停止しました")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// untilNextMinute は次の分境界までの待ち時間を返す。
func untilNextMinute(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(now)
}

// tick は1回のティック処理を実行する。前回のティックが処理中の場合は
// キューイングせずスキップする。
func (s *Scheduler) tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.collector.RecordTickSkipped()
		s.logger.Warn("前回のティックが処理中のためスキップします")
		return
	}
	defer s.running.Store(false)

	if err := s.RunOnce(ctx, time.Now()); err != nil {
		s.logger.Error("配信サイクルの実行に失敗しました",
			slog.String("error", err.Error()),
		)
	}
}

// RunOnce は指定時点を基準に配信対象を判定し、並列で配信を実行する。
// 時刻はサイクルの開始時に1度だけ評価し、全購読者の判定に同じ値を使う。
// 個々の購読者の失敗はログに残すのみで、他の購読者の配信を妨げない。
func (s *Scheduler) RunOnce(ctx context.Context, now time.Time) error {
	start := time.Now()
	defer func() {
		s.collector.RecordTickDuration(time.Since(start))
	}()

	subs, err := s.subRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	due := s.dueSubscribers(subs, now)
	if len(due) == 0 {
		return nil
	}

	s.collector.RecordDueMatched(len(due))
	s.logger.Info("配信サイクルを開始します",
		slog.Int("due_count", len(due)),
		slog.Int("active_count", len(subs)),
	)

	// semaphoreパターンで並列数を制御
	sem := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	for _, sub := range due {
		wg.Add(1)
		sem <- struct{}{} // semaphore取得（ブロック）

		go func(sub *model.Subscriber) {
			defer wg.Done()
			defer func() { <-sem }() // semaphore解放

			if err := s.deliverer.Deliver(ctx, sub, now); err != nil {
				s.logger.Error("購読者への配信に失敗しました",
					slog.String("subscriber_id", sub.ID),
					slog.String("error", err.Error()),
				)
			}
		}(sub)
	}

	wg.Wait()

	s.logger.Info("配信サイクルが完了しました",
		slog.Int("due_count", len(due)),
		slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
	)

	return nil
}

// dueSubscribers は配信時刻に一致し、かつこの分にまだ配信していない
// 購読者を返す。タイムゾーンが解決できない購読者は配信せずスキップする
// （フェイルクローズ）。
func (s *Scheduler) dueSubscribers(subs []*model.Subscriber, now time.Time) []*model.Subscriber {
	bucket := now.UTC().Format(minuteBucket)

	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*model.Subscriber
	for _, sub := range subs {
		localMinute, err := schedule.LocalMinute(now, sub.Timezone)
		if err != nil {
			s.collector.RecordDeliveryFailure(string(sub.Theme), "invalid_timezone")
			s.logger.Error("タイムゾーンを解決できないため配信をスキップします",
				slog.String("subscriber_id", sub.ID),
				slog.String("timezone", sub.Timezone),
				slog.String("error", err.Error()),
			)
			continue
		}
		if localMinute != sub.SendTime {
			continue
		}
		if s.lastDelivered[sub.ID] == bucket {
			continue
		}
		s.lastDelivered[sub.ID] = bucket
		due = append(due, sub)
	}

	// 過去の分のエントリは保持しても意味がないため掃除する
	for id, b := range s.lastDelivered {
		if b != bucket {
			delete(s.lastDelivered, id)
		}
	}

	return due
}
