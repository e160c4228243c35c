package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/morningword/internal/model"
)

// PostgresPrayerRepo はPostgreSQLを使用した祈りのリクエストリポジトリ。
type PostgresPrayerRepo struct {
	db *sql.DB
}

// NewPostgresPrayerRepo はPostgresPrayerRepoを生成する。
func NewPostgresPrayerRepo(db *sql.DB) *PostgresPrayerRepo {
	return &PostgresPrayerRepo{db: db}
}

// FindByID は指定IDのリクエストを取得する。見つからない場合はnilを返す。
func (r *PostgresPrayerRepo) FindByID(ctx context.Context, id string) (*model.Prayer, error) {
	prayer := &model.Prayer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, request, category, prayed_count, created_at
		 FROM prayers WHERE id = $1`,
		id,
	).Scan(
		&prayer.ID, &prayer.Name, &prayer.Request,
		&prayer.Category, &prayer.PrayedCount, &prayer.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("リクエストの取得に失敗しました: %w", err)
	}
	return prayer, nil
}

// ListRecent はリクエスト一覧を新しい順で返す。
func (r *PostgresPrayerRepo) ListRecent(ctx context.Context, limit int) ([]*model.Prayer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, request, category, prayed_count, created_at
		 FROM prayers
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("リクエスト一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var prayers []*model.Prayer
	for rows.Next() {
		prayer := &model.Prayer{}
		if err := rows.Scan(
			&prayer.ID, &prayer.Name, &prayer.Request,
			&prayer.Category, &prayer.PrayedCount, &prayer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("リクエスト一覧の読み取りに失敗しました: %w", err)
		}
		prayers = append(prayers, prayer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("リクエスト一覧の走査に失敗しました: %w", err)
	}

	return prayers, nil
}

// Create はリクエストを作成する。
func (r *PostgresPrayerRepo) Create(ctx context.Context, prayer *model.Prayer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO prayers (id, name, request, category, prayed_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		prayer.ID, prayer.Name, prayer.Request,
		prayer.Category, prayer.PrayedCount, prayer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	return nil
}

// IncrementPrayed はカウンターを1増やし、更新後の値を返す。
// 該当行がない場合はfound=falseを返す。
func (r *PostgresPrayerRepo) IncrementPrayed(ctx context.Context, id string) (int, bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`UPDATE prayers SET prayed_count = prayed_count + 1
		 WHERE id = $1
		 RETURNING prayed_count`,
		id,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("カウンターの更新に失敗しました: %w", err)
	}
	return count, true, nil
}

// compile-time interface check
var _ PrayerRepository = (*PostgresPrayerRepo)(nil)
