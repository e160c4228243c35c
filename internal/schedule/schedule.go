// Package schedule はタイムゾーンを考慮した配信時刻の解決を提供する。
// ある時点をIANAゾーンの市民時刻（civil time）に変換する純粋関数群で、
// 夏時間のオフセットはタイムゾーンデータベースに委譲する。
package schedule

import (
	"fmt"
	"sync"
	"time"
)

// locCache はtime.LoadLocationの結果をゾーン名ごとにキャッシュする。
// LoadLocationは呼び出しごとにtzdataを読み込むため、毎分×購読者数の解決では
// キャッシュが必要になる。
var locCache sync.Map // map[string]*time.Location

// loadLocation はキャッシュ経由でタイムゾーンを解決する。
func loadLocation(tz string) (*time.Location, error) {
	if v, ok := locCache.Load(tz); ok {
		return v.(*time.Location), nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("タイムゾーンの解決に失敗しました: %w", err)
	}

	locCache.Store(tz, loc)
	return loc, nil
}

// LocalMinute は指定時点のゾーンにおける市民時刻を "HH:MM"（24時間表記、
// ゼロ埋め）で返す。決定的で副作用を持たない。
// ゾーン名が解決できない場合のみエラーを返し、フォールバック方針は呼び出し元が決める。
func LocalMinute(now time.Time, tz string) (string, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return "", err
	}
	return now.In(loc).Format("15:04"), nil
}

// LocalTime は指定時点をゾーンの市民時刻に変換して返す。
// 聖句の選択はゾーンごとの暦日に基づくため、判定と同じ解決系を使う。
func LocalTime(now time.Time, tz string) (time.Time, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	return now.In(loc), nil
}

// ValidTimezone はIANAゾーン名として解決可能かを返す。
func ValidTimezone(tz string) bool {
	_, err := loadLocation(tz)
	return err == nil
}

// ValidSendTime は配信時刻が24時間表記のゼロ埋め "HH:MM" 形式かを検証する。
// 配信判定は文字列の完全一致で行うため、"7:00" のような揺れは登録時点で弾く。
func ValidSendTime(s string) bool {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return false
	}
	return t.Format("15:04") == s
}
