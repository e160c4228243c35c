package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/morningword/internal/model"
)

// PostgresSubscriberRepo はPostgreSQLを使用した購読者リポジトリ。
type PostgresSubscriberRepo struct {
	db *sql.DB
}

// NewPostgresSubscriberRepo はPostgresSubscriberRepoを生成する。
func NewPostgresSubscriberRepo(db *sql.DB) *PostgresSubscriberRepo {
	return &PostgresSubscriberRepo{db: db}
}

const subscriberColumns = `id, phone, theme, timezone, send_time, active, created_at, updated_at`

// scanSubscriber は1行を読み取りSubscriberに変換する。
func scanSubscriber(row interface {
	Scan(dest ...interface{}) error
}) (*model.Subscriber, error) {
	sub := &model.Subscriber{}
	err := row.Scan(
		&sub.ID, &sub.Phone, &sub.Theme, &sub.Timezone,
		&sub.SendTime, &sub.Active, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// FindByID は指定IDの購読者を取得する。見つからない場合はnilを返す。
func (r *PostgresSubscriberRepo) FindByID(ctx context.Context, id string) (*model.Subscriber, error) {
	sub, err := scanSubscriber(r.db.QueryRowContext(ctx,
		`SELECT `+subscriberColumns+` FROM subscribers WHERE id = $1`,
		id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("購読者の取得に失敗しました: %w", err)
	}
	return sub, nil
}

// FindByPhone は電話番号で購読者を検索する（active状態を問わない）。
// 複数行ある場合は最新の行を返す。見つからない場合はnilを返す。
func (r *PostgresSubscriberRepo) FindByPhone(ctx context.Context, phone string) (*model.Subscriber, error) {
	sub, err := scanSubscriber(r.db.QueryRowContext(ctx,
		`SELECT `+subscriberColumns+` FROM subscribers
		 WHERE phone = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		phone,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("電話番号による購読者の検索に失敗しました: %w", err)
	}
	return sub, nil
}

// FindActiveByPhone は電話番号でアクティブな購読者を検索する。見つからない場合はnilを返す。
func (r *PostgresSubscriberRepo) FindActiveByPhone(ctx context.Context, phone string) (*model.Subscriber, error) {
	sub, err := scanSubscriber(r.db.QueryRowContext(ctx,
		`SELECT `+subscriberColumns+` FROM subscribers
		 WHERE phone = $1 AND active`,
		phone,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("アクティブ購読者の検索に失敗しました: %w", err)
	}
	return sub, nil
}

// ListActive は配信対象（active=true）の購読者一覧を返す。
func (r *PostgresSubscriberRepo) ListActive(ctx context.Context) ([]*model.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+subscriberColumns+` FROM subscribers
		 WHERE active
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("配信対象購読者の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var subs []*model.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("配信対象購読者の読み取りに失敗しました: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("配信対象購読者の走査に失敗しました: %w", err)
	}

	return subs, nil
}

// CountActive はアクティブな購読者数を返す。
func (r *PostgresSubscriberRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM subscribers WHERE active`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("購読者数の取得に失敗しました: %w", err)
	}
	return count, nil
}

// Create は購読者を作成する。
func (r *PostgresSubscriberRepo) Create(ctx context.Context, sub *model.Subscriber) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subscribers (id, phone, theme, timezone, send_time, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sub.ID, sub.Phone, sub.Theme, sub.Timezone,
		sub.SendTime, sub.Active, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("購読者の作成に失敗しました: %w", err)
	}
	return nil
}

// UpdateActive は購読者のactive状態を更新する。
func (r *PostgresSubscriberRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subscribers SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("購読状態の更新に失敗しました: %w", err)
	}
	return nil
}

// UpdateTheme は購読者のテーマを更新する。
func (r *PostgresSubscriberRepo) UpdateTheme(ctx context.Context, id string, theme model.Theme) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subscribers SET theme = $2, updated_at = now() WHERE id = $1`,
		id, theme,
	)
	if err != nil {
		return fmt.Errorf("テーマの更新に失敗しました: %w", err)
	}
	return nil
}

// compile-time interface check
var _ SubscriberRepository = (*PostgresSubscriberRepo)(nil)
