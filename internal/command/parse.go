// Package command は受信SMSのコマンド文法の解析と応答生成を提供する。
package command

import "strings"

// Kind はコマンドの種別を表す。
type Kind int

const (
	// KindUnknown は既知のコマンドに一致しない本文。
	KindUnknown Kind = iota
	// KindStop は購読停止。
	KindStop
	// KindStart は購読再開。
	KindStart
	// KindChangeTheme はテーマ変更。
	KindChangeTheme
	// KindHelp はヘルプ表示。
	KindHelp
)

// Command は解析済みの受信コマンド。
type Command struct {
	Kind Kind
	// ThemeArg は KindChangeTheme のときの要求テーマ名(小文字化・トリム済み)。
	ThemeArg string
}

var stopWords = map[string]bool{
	"stop": true, "unsubscribe": true, "cancel": true, "quit": true, "end": true,
}

var startWords = map[string]bool{
	"start": true, "subscribe": true, "yes": true,
}

const changePrefix = "change to "

// Parse は受信SMS本文をコマンドに解析する。
// 本文はトリムと小文字化の後に照合する。完全一致のみをコマンドと認め、
// 前後に余計な語が付いた本文は KindUnknown として扱う。
func Parse(body string) Command {
	normalized := strings.ToLower(strings.TrimSpace(body))

	switch {
	case stopWords[normalized]:
		return Command{Kind: KindStop}
	case startWords[normalized]:
		return Command{Kind: KindStart}
	case normalized == "help":
		return Command{Kind: KindHelp}
	case strings.HasPrefix(normalized, changePrefix):
		arg := strings.TrimSpace(strings.TrimPrefix(normalized, changePrefix))
		return Command{Kind: KindChangeTheme, ThemeArg: arg}
	default:
		return Command{Kind: KindUnknown}
	}
}
