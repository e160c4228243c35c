package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// twilioAPIBase はTwilio REST APIのベースURL。
const twilioAPIBase = "https://api.twilio.com"

// TwilioClient はTwilio Messages APIのクライアント。
type TwilioClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	accountSID string
	authToken  string
	from       string
	baseURL    string // テスト用にエンドポイントを差し替え可能
}

// NewTwilioClient はTwilioClient の新しいインスタンスを生成する。
func NewTwilioClient(httpClient *http.Client, logger *slog.Logger, accountSID, authToken, from string) *TwilioClient {
	return &TwilioClient{
		httpClient: httpClient,
		logger:     logger,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    twilioAPIBase,
	}
}

// twilioErrorResponse はTwilio APIのエラーレスポンス。
type twilioErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send は指定の電話番号へSMSを1通送信する。
// Twilioがエラーステータスを返した場合はエラー本文のmessageを含めて返す。
func (c *TwilioClient) Send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Twilio APIの呼び出しに失敗しました",
			slog.String("error", err.Error()),
			slog.String("to", to),
		)
		return fmt.Errorf("Twilio APIの呼び出しに失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		var twilioErr twilioErrorResponse
		_ = json.Unmarshal(respBody, &twilioErr)
		c.logger.Error("Twilio APIがエラーステータスを返しました",
			slog.Int("http_status", resp.StatusCode),
			slog.Int("twilio_code", twilioErr.Code),
			slog.String("to", to),
		)
		if twilioErr.Message != "" {
			return fmt.Errorf("Twilio APIがステータス %d を返しました: %s", resp.StatusCode, twilioErr.Message)
		}
		return fmt.Errorf("Twilio APIがステータス %d を返しました", resp.StatusCode)
	}

	// 成功レスポンスは読み捨てる。SIDのみログに残す。
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("レスポンスボディの読み取りに失敗しました: %w", err)
	}
	var created struct {
		SID string `json:"sid"`
	}
	_ = json.Unmarshal(respBody, &created)
	c.logger.Info("SMSを送信しました",
		slog.String("to", to),
		slog.String("message_sid", created.SID),
	)
	return nil
}

var _ MessageSender = (*TwilioClient)(nil)
