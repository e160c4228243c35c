// Package model はドメインモデルを定義する。
package model

import (
	"strings"
	"time"
)

// Subscriber は配信購読者を表す。
// 電話番号ごとに履歴行を保持し、物理削除は行わない。
// active=false の行は配信対象からも重複チェックからも除外される。
type Subscriber struct {
	ID        string
	Phone     string
	Theme     Theme
	Timezone  string
	SendTime  string // ローカル時刻 "HH:MM"（24時間表記、ゼロ埋め）
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Theme は配信テーマを表す。
type Theme string

const (
	// ThemeEncouragement は励ましのテーマ。未知テーマのフォールバック先。
	ThemeEncouragement Theme = "Encouragement"
	// ThemeWisdom は知恵のテーマ。
	ThemeWisdom Theme = "Wisdom"
	// ThemePeace は平安のテーマ。
	ThemePeace Theme = "Peace"
	// ThemeStrength は力のテーマ。
	ThemeStrength Theme = "Strength"
	// ThemeFaith は信仰のテーマ。
	ThemeFaith Theme = "Faith"
	// ThemeLove は愛のテーマ。
	ThemeLove Theme = "Love"
)

// Themes は有効な全テーマの一覧（表示順）。
var Themes = []Theme{
	ThemeEncouragement,
	ThemeWisdom,
	ThemePeace,
	ThemeStrength,
	ThemeFaith,
	ThemeLove,
}

const (
	// DefaultTimezone はタイムゾーン未指定時のデフォルト。
	DefaultTimezone = "America/New_York"
	// DefaultSendTime は配信時刻未指定時のデフォルト。
	DefaultSendTime = "07:00"
)

// ParseTheme はテーマ名を大文字小文字を無視して解決する。
// 有効なテーマでない場合は falseを返す。
func ParseTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	return "", false
}

// NormalizeTheme は未知のテーマをデフォルトテーマに解決する。
// コンテンツ選択専用であり、保存されたテーマ値には影響しない。
func NormalizeTheme(t Theme) Theme {
	for _, v := range Themes {
		if v == t {
			return t
		}
	}
	return ThemeEncouragement
}
