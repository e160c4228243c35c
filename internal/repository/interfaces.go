// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/morningword/internal/model"
)

// SubscriberRepository は購読者データの永続化インターフェース。
// 行の物理削除は行わず、active列の更新のみでライフサイクルを表現する。
type SubscriberRepository interface {
	// FindByID は指定IDの購読者を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Subscriber, error)

	// FindByPhone は電話番号で購読者を検索する（active状態を問わない）。
	// 複数行ある場合は最新の行を返す。見つからない場合はnilを返す。
	FindByPhone(ctx context.Context, phone string) (*model.Subscriber, error)

	// FindActiveByPhone は電話番号でアクティブな購読者を検索する。見つからない場合はnilを返す。
	FindActiveByPhone(ctx context.Context, phone string) (*model.Subscriber, error)

	// ListActive は配信対象（active=true）の購読者一覧を返す。
	ListActive(ctx context.Context) ([]*model.Subscriber, error)

	// CountActive はアクティブな購読者数を返す。
	CountActive(ctx context.Context) (int, error)

	// Create は購読者を作成する。
	Create(ctx context.Context, sub *model.Subscriber) error

	// UpdateActive は購読者のactive状態を更新する。
	UpdateActive(ctx context.Context, id string, active bool) error

	// UpdateTheme は購読者のテーマを更新する。
	UpdateTheme(ctx context.Context, id string, theme model.Theme) error
}

// PrayerRepository は祈りのリクエストの永続化インターフェース。
type PrayerRepository interface {
	// FindByID は指定IDのリクエストを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Prayer, error)

	// ListRecent はリクエスト一覧を新しい順で返す。
	ListRecent(ctx context.Context, limit int) ([]*model.Prayer, error)

	// Create はリクエストを作成する。
	Create(ctx context.Context, prayer *model.Prayer) error

	// IncrementPrayed はカウンターを1増やし、更新後の値を返す。
	// 該当行がない場合はfound=falseを返す。
	IncrementPrayed(ctx context.Context, id string) (count int, found bool, err error)
}
