package subscriber

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hitoshi/morningword/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

// nopCollector は MetricsCollector の何もしないテスト用実装。
type nopCollector struct{}

func (nopCollector) RecordDeliverySuccess(theme string)                {}
func (nopCollector) RecordDeliveryFailure(theme string, reason string) {}
func (nopCollector) RecordDueMatched(count int)                        {}
func (nopCollector) RecordTickDuration(duration time.Duration)         {}
func (nopCollector) RecordTickSkipped()                                {}
func (nopCollector) RecordWelcomeSent()                                {}
func (nopCollector) RecordWelcomeFailed()                              {}

// mockSubscriberRepo は SubscriberRepository のテスト用実装。
type mockSubscriberRepo struct {
	findByIDFunc          func(ctx context.Context, id string) (*model.Subscriber, error)
	findByPhoneFunc       func(ctx context.Context, phone string) (*model.Subscriber, error)
	findActiveByPhoneFunc func(ctx context.Context, phone string) (*model.Subscriber, error)
	listActiveFunc        func(ctx context.Context) ([]*model.Subscriber, error)
	countActiveFunc       func(ctx context.Context) (int, error)
	createFunc            func(ctx context.Context, sub *model.Subscriber) error
	updateActiveFunc      func(ctx context.Context, id string, active bool) error
	updateThemeFunc       func(ctx context.Context, id string, theme model.Theme) error
}

func (m *mockSubscriberRepo) FindByID(ctx context.Context, id string) (*model.Subscriber, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockSubscriberRepo) FindByPhone(ctx context.Context, phone string) (*model.Subscriber, error) {
	return m.findByPhoneFunc(ctx, phone)
}

func (m *mockSubscriberRepo) FindActiveByPhone(ctx context.Context, phone string) (*model.Subscriber, error) {
	return m.findActiveByPhoneFunc(ctx, phone)
}

func (m *mockSubscriberRepo) ListActive(ctx context.Context) ([]*model.Subscriber, error) {
	return m.listActiveFunc(ctx)
}

func (m *mockSubscriberRepo) CountActive(ctx context.Context) (int, error) {
	return m.countActiveFunc(ctx)
}

func (m *mockSubscriberRepo) Create(ctx context.Context, sub *model.Subscriber) error {
	return m.createFunc(ctx, sub)
}

func (m *mockSubscriberRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	return m.updateActiveFunc(ctx, id, active)
}

func (m *mockSubscriberRepo) UpdateTheme(ctx context.Context, id string, theme model.Theme) error {
	return m.updateThemeFunc(ctx, id, theme)
}

// recordingSender は送信内容を記録する MessageSender。
type recordingSender struct {
	mu    sync.Mutex
	calls []sentMessage
	done  chan struct{}
	err   error
}

type sentMessage struct {
	to   string
	body string
}

func newRecordingSender(err error) *recordingSender {
	return &recordingSender{done: make(chan struct{}, 10), err: err}
}

func (s *recordingSender) Send(ctx context.Context, to, body string) error {
	s.mu.Lock()
	s.calls = append(s.calls, sentMessage{to: to, body: body})
	s.mu.Unlock()
	s.done <- struct{}{}
	return s.err
}

func (s *recordingSender) wait(t *testing.T) sentMessage {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("ウェルカムSMSが送信されなかった")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func TestSubscribe_Success(t *testing.T) {
	var created *model.Subscriber
	repo := &mockSubscriberRepo{
		findActiveByPhoneFunc: func(ctx context.Context, phone string) (*model.Subscriber, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, sub *model.Subscriber) error {
			created = sub
			return nil
		},
	}
	sender := newRecordingSender(nil)
	svc := NewService(repo, sender, nopCollector{}, testLogger(), "https://selah.example")

	sub, err := svc.Subscribe(context.Background(), SubscribeInput{
		Phone: "+1 555 123 4567",
		Theme: "peace",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if sub.Phone != "+15551234567" {
		t.Errorf("電話番号が正規化されていない: %s", sub.Phone)
	}
	if sub.Theme != model.ThemePeace {
		t.Errorf("テーマが正規化されていない: %s", sub.Theme)
	}
	if sub.Timezone != model.DefaultTimezone {
		t.Errorf("デフォルトタイムゾーンが適用されていない: %s", sub.Timezone)
	}
	if sub.SendTime != model.DefaultSendTime {
		t.Errorf("デフォルト配信時刻が適用されていない: %s", sub.SendTime)
	}
	if !sub.Active {
		t.Error("新規購読がアクティブでない")
	}
	if sub.ID == "" {
		t.Error("IDが採番されていない")
	}
	if created == nil {
		t.Fatal("リポジトリに保存されていない")
	}

	msg := sender.wait(t)
	if msg.to != "+15551234567" {
		t.Errorf("ウェルカムSMSの宛先が不正: %s", msg.to)
	}
	if !strings.Contains(msg.body, "Peace") || !strings.Contains(msg.body, "07:00") {
		t.Errorf("ウェルカムSMSの本文が不正: %q", msg.body)
	}
	wantLink := "https://selah.example/unsubscribe?token=" + sub.ID
	if !strings.Contains(msg.body, wantLink) {
		t.Errorf("ウェルカムSMSに購読解除リンクが含まれていない: %q", msg.body)
	}
}

func TestSubscribe_UnknownThemeStoredAsIs(t *testing.T) {
	var created *model.Subscriber
	repo := &mockSubscriberRepo{
		findActiveByPhoneFunc: func(ctx context.Context, phone string) (*model.Subscriber, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, sub *model.Subscriber) error {
			created = sub
			return nil
		},
	}
	sender := newRecordingSender(nil)
	svc := NewService(repo, sender, nopCollector{}, testLogger(), "https://selah.example")

	sub, err := svc.Subscribe(context.Background(), SubscribeInput{
		Phone: "+15551234567",
		Theme: "Joy",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if sub.Theme != model.Theme("Joy") {
		t.Errorf("未知のテーマがそのまま保存されていない: %s", sub.Theme)
	}
	if created == nil || created.Theme != model.Theme("Joy") {
		t.Error("リポジトリに保存されたテーマが入力と一致しない")
	}

	msg := sender.wait(t)
	if !strings.Contains(msg.body, "Joy") {
		t.Errorf("ウェルカムSMSの本文に入力テーマが含まれていない: %q", msg.body)
	}
}

func TestSubscribe_MissingFields(t *testing.T) {
	svc := NewService(&mockSubscriberRepo{}, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	tests := []struct {
		name  string
		input SubscribeInput
	}{
		{name: "電話番号なし", input: SubscribeInput{Theme: "Faith"}},
		{name: "テーマなし", input: SubscribeInput{Phone: "+15551234567"}},
		{name: "空白のみの電話番号", input: SubscribeInput{Phone: "   ", Theme: "Faith"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Subscribe(context.Background(), tt.input)
			var apiErr *model.APIError
			if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodePhoneThemeRequired {
				t.Errorf("PHONE_THEME_REQUIREDが返るべき: %v", err)
			}
		})
	}
}

func TestSubscribe_InvalidTimezoneAndSendTime(t *testing.T) {
	svc := NewService(&mockSubscriberRepo{}, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	_, err := svc.Subscribe(context.Background(), SubscribeInput{
		Phone: "+15551234567", Theme: "Faith", Timezone: "Mars/Olympus",
	})
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidTimezone {
		t.Errorf("INVALID_TIMEZONEが返るべき: %v", err)
	}

	_, err = svc.Subscribe(context.Background(), SubscribeInput{
		Phone: "+15551234567", Theme: "Faith", SendTime: "7:00",
	})
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidSendTime {
		t.Errorf("INVALID_SEND_TIMEが返るべき: %v", err)
	}
}

func TestSubscribe_Duplicate(t *testing.T) {
	repo := &mockSubscriberRepo{
		findActiveByPhoneFunc: func(ctx context.Context, phone string) (*model.Subscriber, error) {
			return &model.Subscriber{ID: "sub-1", Phone: phone, Active: true}, nil
		},
	}
	svc := NewService(repo, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	_, err := svc.Subscribe(context.Background(), SubscribeInput{
		Phone: "+15551234567", Theme: "Love",
	})
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeDuplicateSubscription {
		t.Errorf("DUPLICATE_SUBSCRIPTIONが返るべき: %v", err)
	}
}

func TestSubscribe_WelcomeFailureDoesNotFailSubscribe(t *testing.T) {
	repo := &mockSubscriberRepo{
		findActiveByPhoneFunc: func(ctx context.Context, phone string) (*model.Subscriber, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, sub *model.Subscriber) error {
			return nil
		},
	}
	sender := newRecordingSender(errors.New("twilio down"))
	svc := NewService(repo, sender, nopCollector{}, testLogger(), "https://selah.example")

	sub, err := svc.Subscribe(context.Background(), SubscribeInput{
		Phone: "+15551234567", Theme: "Strength",
	})
	if err != nil {
		t.Fatalf("ウェルカム失敗で登録が失敗した: %v", err)
	}
	if sub == nil {
		t.Fatal("購読者が返っていない")
	}
	sender.wait(t)
}

func TestDeactivate(t *testing.T) {
	existingID := "6d2f4b8a-1c3e-4f5a-9b7d-2e4f6a8c0b1d"
	deactivated := false
	repo := &mockSubscriberRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Subscriber, error) {
			if id == existingID {
				return &model.Subscriber{ID: id, Active: true}, nil
			}
			return nil, nil
		},
		updateActiveFunc: func(ctx context.Context, id string, active bool) error {
			deactivated = true
			return nil
		},
	}
	svc := NewService(repo, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	sub, err := svc.Deactivate(context.Background(), existingID)
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if !deactivated || sub.Active {
		t.Error("購読が解除されていない")
	}

	_, err = svc.Deactivate(context.Background(), "11111111-2222-3333-4444-555555555555")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeSubscriberNotFound {
		t.Errorf("SUBSCRIBER_NOT_FOUNDが返るべき: %v", err)
	}
}

func TestDeactivate_MalformedID(t *testing.T) {
	repo := &mockSubscriberRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Subscriber, error) {
			t.Error("不正なIDでリポジトリが呼ばれた")
			return nil, nil
		},
	}
	svc := NewService(repo, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	_, err := svc.Deactivate(context.Background(), "not-a-uuid")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeSubscriberNotFound {
		t.Errorf("SUBSCRIBER_NOT_FOUNDが返るべき: %v", err)
	}
}

func TestDeactivate_Idempotent(t *testing.T) {
	repo := &mockSubscriberRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Subscriber, error) {
			return &model.Subscriber{ID: id, Active: false}, nil
		},
		updateActiveFunc: func(ctx context.Context, id string, active bool) error {
			t.Error("解除済み購読に更新が走った")
			return nil
		},
	}
	svc := NewService(repo, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	sub, err := svc.Deactivate(context.Background(), "6d2f4b8a-1c3e-4f5a-9b7d-2e4f6a8c0b1d")
	if err != nil {
		t.Fatalf("解除済みIDで失敗した: %v", err)
	}
	if sub.Active {
		t.Error("解除済みのはずがアクティブ")
	}
}

func TestCountActive(t *testing.T) {
	repo := &mockSubscriberRepo{
		countActiveFunc: func(ctx context.Context) (int, error) {
			return 42, nil
		},
	}
	svc := NewService(repo, newRecordingSender(nil), nopCollector{}, testLogger(), "https://selah.example")

	count, err := svc.CountActive(context.Background())
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if count != 42 {
		t.Errorf("購読者数が不正: %d", count)
	}
}
