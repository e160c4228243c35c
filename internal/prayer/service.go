// Package prayer は祈りのリクエスト（プレイヤーウォール）のドメインロジックを提供する。
package prayer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/repository"
	"github.com/hitoshi/morningword/internal/security"
)

// defaultListLimit は一覧取得のデフォルト件数。
const defaultListLimit = 100

// Service は祈りのリクエストのサービス層。
type Service struct {
	repo      repository.PrayerRepository
	sanitizer security.TextSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.PrayerRepository, sanitizer security.TextSanitizerService) *Service {
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// CreateInput はリクエスト投稿の入力。
type CreateInput struct {
	Name     string
	Request  string
	Category string
}

// Create はリクエストを投稿する。
// 本文は必須で、名前とカテゴリは省略時にデフォルト値を補う。
// 投稿テキストは保存前にサニタイズする。
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.Prayer, error) {
	request := s.sanitizer.Sanitize(input.Request)
	if request == "" {
		return nil, model.NewRequestRequiredError()
	}

	name := s.sanitizer.Sanitize(input.Name)
	if name == "" {
		name = model.DefaultPrayerName
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = model.DefaultPrayerCategory
	}

	prayer := &model.Prayer{
		ID:          uuid.NewString(),
		Name:        name,
		Request:     request,
		Category:    category,
		PrayedCount: 0,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, prayer); err != nil {
		return nil, fmt.Errorf("リクエストの保存に失敗しました: %w", err)
	}

	return prayer, nil
}

// List はリクエスト一覧を新しい順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Prayer, error) {
	prayers, err := s.repo.ListRecent(ctx, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("リクエスト一覧の取得に失敗しました: %w", err)
	}
	return prayers, nil
}

// Prayed は指定リクエストの「祈りました」カウンターを1増やし、更新後の値を返す。
func (s *Service) Prayed(ctx context.Context, id string) (int, error) {
	// UUID列に不正な形式を渡すとnot foundではなくDBエラーになるため先に検証する。
	if _, err := uuid.Parse(id); err != nil {
		return 0, model.NewPrayerNotFoundError(id)
	}

	count, found, err := s.repo.IncrementPrayed(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("カウンターの更新に失敗しました: %w", err)
	}
	if !found {
		return 0, model.NewPrayerNotFoundError(id)
	}
	return count, nil
}
