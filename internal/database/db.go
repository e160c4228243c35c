// Package database はPostgreSQL接続とスキーママイグレーションを提供する。
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open はDATABASE_URL形式の接続文字列で*sql.DBを生成する。
// sql.Openの時点では接続確立は行われないので、疎通はPingContextで確認する。
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("データベース接続のオープンに失敗しました: %w", err)
	}

	return db, nil
}
