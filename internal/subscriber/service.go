// Package subscriber は購読管理のドメインロジックを提供する。
package subscriber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/hitoshi/morningword/internal/content"
	"github.com/hitoshi/morningword/internal/metrics"
	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/repository"
	"github.com/hitoshi/morningword/internal/schedule"
	"github.com/hitoshi/morningword/internal/sms"
)

// uniqueViolation はPostgreSQLの一意制約違反のエラーコード。
const uniqueViolation = "23505"

// welcomeTimeout はウェルカムSMS送信のタイムアウト。
const welcomeTimeout = 10 * time.Second

// Service は購読管理のサービス層。
// 購読登録、解除、統計のビジネスロジックを提供する。
type Service struct {
	repo      repository.SubscriberRepository
	sender    sms.MessageSender
	collector metrics.MetricsCollector
	logger    *slog.Logger
	baseURL   string
}

// NewService はServiceの新しいインスタンスを生成する。
// baseURLはウェルカムSMSの購読解除リンクの組み立てに使う。
func NewService(repo repository.SubscriberRepository, sender sms.MessageSender, collector metrics.MetricsCollector, logger *slog.Logger, baseURL string) *Service {
	return &Service{
		repo:      repo,
		sender:    sender,
		collector: collector,
		logger:    logger,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// SubscribeInput は購読登録の入力。
type SubscribeInput struct {
	Phone    string
	Theme    string
	Timezone string
	SendTime string
}

// Subscribe は新規購読を登録する。
// 電話番号は空白を除去して正規化し、タイムゾーンと配信時刻は省略時に
// デフォルト値を補う。同一番号のアクティブ購読が既にある場合は
// DUPLICATE_SUBSCRIPTION を返す。ウェルカムSMSは非同期のベストエフォートで
// 送信し、失敗しても登録は成功として扱う。
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (*model.Subscriber, error) {
	phone := normalizePhone(input.Phone)
	if phone == "" || strings.TrimSpace(input.Theme) == "" {
		return nil, model.NewPhoneThemeRequiredError()
	}

	theme, ok := model.ParseTheme(strings.TrimSpace(input.Theme))
	if !ok {
		// 未知のテーマもそのまま保存する。デフォルトテーマへのフォールバックは
		// 配信内容の選択時にNormalizeThemeが行う。
		theme = model.Theme(strings.TrimSpace(input.Theme))
	}

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = model.DefaultTimezone
	}
	if !schedule.ValidTimezone(tz) {
		return nil, model.NewInvalidTimezoneError(tz)
	}

	sendTime := strings.TrimSpace(input.SendTime)
	if sendTime == "" {
		sendTime = model.DefaultSendTime
	}
	if !schedule.ValidSendTime(sendTime) {
		return nil, model.NewInvalidSendTimeError(sendTime)
	}

	existing, err := s.repo.FindActiveByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("購読者の検索に失敗しました: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateSubscriptionError()
	}

	now := time.Now()
	sub := &model.Subscriber{
		ID:        uuid.NewString(),
		Phone:     phone,
		Theme:     theme,
		Timezone:  tz,
		SendTime:  sendTime,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		// 同時登録のレースは部分一意インデックスが弾く
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, model.NewDuplicateSubscriptionError()
		}
		return nil, fmt.Errorf("購読者の登録に失敗しました: %w", err)
	}

	go s.sendWelcome(sub)

	return sub, nil
}

// sendWelcome はウェルカムSMSをベストエフォートで送信する。
// 失敗はログに残すのみで、購読登録の結果には影響しない。
func (s *Service) sendWelcome(sub *model.Subscriber) {
	ctx, cancel := context.WithTimeout(context.Background(), welcomeTimeout)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	body := content.WelcomeMessage(sub.Theme, sub.SendTime, rng)
	if s.baseURL != "" {
		body += fmt.Sprintf("\n\nUnsubscribe anytime: %s/unsubscribe?token=%s", s.baseURL, sub.ID)
	}

	if err := s.sender.Send(ctx, sub.Phone, body); err != nil {
		s.collector.RecordWelcomeFailed()
		s.logger.Error("ウェルカムSMSの送信に失敗しました",
			slog.String("subscriber_id", sub.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.collector.RecordWelcomeSent()
	s.logger.Info("ウェルカムSMSを送信しました",
		slog.String("subscriber_id", sub.ID),
		slog.String("theme", string(sub.Theme)),
	)
}

// Deactivate は購読を解除する。行は削除せずactiveのみを落とす。
// 既に解除済みのIDに対しても成功として扱う（冪等）。
func (s *Service) Deactivate(ctx context.Context, id string) (*model.Subscriber, error) {
	// UUID列に不正な形式を渡すとnot foundではなくDBエラーになるため先に検証する。
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.NewSubscriberNotFoundError()
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("購読者の取得に失敗しました: %w", err)
	}
	if sub == nil {
		return nil, model.NewSubscriberNotFoundError()
	}

	if sub.Active {
		if err := s.repo.UpdateActive(ctx, id, false); err != nil {
			return nil, fmt.Errorf("購読解除に失敗しました: %w", err)
		}
		sub.Active = false
	}

	return sub, nil
}

// CountActive はアクティブな購読者数を返す。
func (s *Service) CountActive(ctx context.Context) (int, error) {
	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("購読者数の取得に失敗しました: %w", err)
	}
	return count, nil
}

// normalizePhone は電話番号から空白文字をすべて除去する。
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}
