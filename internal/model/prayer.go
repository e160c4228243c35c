package model

import "time"

// Prayer は公開の祈りのリクエストを表す。
// 匿名ユーザーが自由記述で投稿し、他のユーザーがカウンターで応答する。
type Prayer struct {
	ID          string
	Name        string
	Request     string
	Category    string
	PrayedCount int
	CreatedAt   time.Time
}

const (
	// DefaultPrayerName は投稿者名未指定時のラベル。
	DefaultPrayerName = "Anonymous"
	// DefaultPrayerCategory はカテゴリ未指定時のデフォルト。
	DefaultPrayerCategory = "General"
)
