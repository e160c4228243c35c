// Package sms はSMS送信機能を提供する。
// Twilio Messages APIの呼び出しと、資格情報未設定時の無効化クライアントを含む。
package sms

import (
	"context"

	"github.com/hitoshi/morningword/internal/model"
)

// MessageSender はSMS送信のインターフェース。
type MessageSender interface {
	// Send は指定の電話番号へSMSを1通送信する。
	Send(ctx context.Context, to, body string) error
}

// disabledSender は資格情報が未設定のときに使う送信実装。
// 常にSMS未設定エラーを返す。
type disabledSender struct{}

// NewDisabledSender は送信を常に拒否する MessageSender を生成する。
func NewDisabledSender() MessageSender {
	return disabledSender{}
}

func (disabledSender) Send(ctx context.Context, to, body string) error {
	return model.NewSMSNotConfiguredError()
}
