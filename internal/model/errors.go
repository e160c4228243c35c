package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, subscription, prayer, sms, ai, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodePhoneThemeRequired    = "PHONE_THEME_REQUIRED"
	ErrCodeInvalidSendTime       = "INVALID_SEND_TIME"
	ErrCodeInvalidTimezone       = "INVALID_TIMEZONE"
	ErrCodeDuplicateSubscription = "DUPLICATE_SUBSCRIPTION"
	ErrCodeSubscriberNotFound    = "SUBSCRIBER_NOT_FOUND"
	ErrCodeRequestRequired       = "REQUEST_REQUIRED"
	ErrCodePrayerNotFound        = "PRAYER_NOT_FOUND"
	ErrCodeSMSNotConfigured      = "SMS_NOT_CONFIGURED"
	ErrCodeSMSSendFailed         = "SMS_SEND_FAILED"
	ErrCodeAINotConfigured       = "AI_NOT_CONFIGURED"
	ErrCodeAIUnavailable         = "AI_UNAVAILABLE"
	ErrCodeMessageRequired       = "MESSAGE_REQUIRED"
)

// NewPhoneThemeRequiredError は必須フィールド欠落エラーを生成する。
func NewPhoneThemeRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodePhoneThemeRequired,
		Message:  "電話番号とテーマは必須です。",
		Category: "validation",
		Action:   "phone と theme を指定してください。",
	}
}

// NewInvalidSendTimeError は配信時刻の形式エラーを生成する。
func NewInvalidSendTimeError(sendTime string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidSendTime,
		Message:  fmt.Sprintf("無効な配信時刻です: %s", sendTime),
		Category: "validation",
		Action:   "配信時刻は24時間表記の HH:MM 形式（例: 07:00）で指定してください。",
	}
}

// NewInvalidTimezoneError はタイムゾーン解決エラーを生成する。
func NewInvalidTimezoneError(tz string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidTimezone,
		Message:  fmt.Sprintf("無効なタイムゾーンです: %s", tz),
		Category: "validation",
		Action:   "IANAタイムゾーン名（例: America/New_York、Asia/Tokyo）を指定してください。",
	}
}

// NewDuplicateSubscriptionError は同一番号のアクティブ購読が既に存在する場合のエラーを生成する。
func NewDuplicateSubscriptionError() *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateSubscription,
		Message:  "この電話番号は既に購読中です。",
		Category: "subscription",
		Action:   "テーマの変更はSMSで「change to <テーマ名>」と返信してください。",
	}
}

// NewSubscriberNotFoundError は購読者未検出エラーを生成する。
func NewSubscriberNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeSubscriberNotFound,
		Message:  "指定された購読が見つかりません。",
		Category: "subscription",
		Action:   "解除リンクが正しいか確認してください。",
	}
}

// NewRequestRequiredError は祈りのリクエスト本文欠落エラーを生成する。
func NewRequestRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeRequestRequired,
		Message:  "リクエスト本文は必須です。",
		Category: "validation",
		Action:   "request に本文を指定してください。",
	}
}

// NewPrayerNotFoundError は祈りのリクエスト未検出エラーを生成する。
func NewPrayerNotFoundError(prayerID string) *APIError {
	return &APIError{
		Code:     ErrCodePrayerNotFound,
		Message:  fmt.Sprintf("指定されたリクエストが見つかりません: %s", prayerID),
		Category: "prayer",
		Action:   "リクエストIDを確認してください。",
	}
}

// NewSMSNotConfiguredError はSMS資格情報未設定エラーを生成する。
// 起動は継続し、送信機能のみが無効化される。
func NewSMSNotConfiguredError() *APIError {
	return &APIError{
		Code:     ErrCodeSMSNotConfigured,
		Message:  "SMS送信が設定されていません。",
		Category: "sms",
		Action:   "TWILIO_SID と TWILIO_TOKEN を設定してください。",
	}
}

// NewSMSSendFailedError はSMS送信失敗エラーを生成する。
func NewSMSSendFailedError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeSMSSendFailed,
		Message:  fmt.Sprintf("SMSの送信に失敗しました: %s", reason),
		Category: "sms",
		Action:   "しばらく待ってから再度お試しください。",
	}
}

// NewAINotConfiguredError はAI資格情報未設定エラーを生成する。
func NewAINotConfiguredError() *APIError {
	return &APIError{
		Code:     ErrCodeAINotConfigured,
		Message:  "AIサービスが設定されていません。",
		Category: "ai",
		Action:   "OPENAI_API_KEY を設定してください。",
	}
}

// NewAIUnavailableError はAIサービス呼び出し失敗エラーを生成する。
func NewAIUnavailableError() *APIError {
	return &APIError{
		Code:     ErrCodeAIUnavailable,
		Message:  "AIサービスへの接続に失敗しました。",
		Category: "ai",
		Action:   "しばらく待ってから再度お試しください。",
	}
}

// NewMessageRequiredError はAIメッセージ欠落エラーを生成する。
func NewMessageRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeMessageRequired,
		Message:  "メッセージは必須です。",
		Category: "validation",
		Action:   "message に本文を指定してください。",
	}
}
