// Package companion はAIコンパニオン機能を提供する。
// OpenAI Chat Completions APIへのプロキシとして動作し、APIキーは
// サーバー側に保持する。
package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hitoshi/morningword/internal/model"
)

const (
	// defaultEndpoint はOpenAI Chat Completions APIのエンドポイント。
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"

	chatModel      = "gpt-4o"
	maxReplyTokens = 600
	temperature    = 0.85
)

// Companion はAIコンパニオンへの問い合わせインターフェース。
type Companion interface {
	// Reply はユーザーメッセージに対するコンパニオンの応答を返す。
	Reply(ctx context.Context, message string) (string, error)
}

// Client はOpenAI Chat Completions APIのクライアント。
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	endpoint   string // テスト用にエンドポイントを差し替え可能
}

// NewClient はClient の新しいインスタンスを生成する。
func NewClient(httpClient *http.Client, logger *slog.Logger, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Reply はユーザーメッセージに対するコンパニオンの応答を返す。
// 空メッセージはバリデーションエラー、API呼び出し失敗はAI_UNAVAILABLEを返す。
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", model.NewMessageRequiredError()
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:       chatModel,
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: trimmed},
		},
	})
	if err != nil {
		return "", fmt.Errorf("リクエストJSONの生成に失敗しました: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("OpenAI APIの呼び出しに失敗しました",
			slog.String("error", err.Error()),
		)
		return "", model.NewAIUnavailableError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("レスポンスボディの読み取りに失敗しました: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("OpenAI APIがエラーステータスを返しました",
			slog.Int("http_status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
		return "", model.NewAIUnavailableError()
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		c.logger.Error("OpenAI APIのレスポンスのパースに失敗しました",
			slog.String("error", err.Error()),
		)
		return "", model.NewAIUnavailableError()
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", model.NewAIUnavailableError()
	}

	return result.Choices[0].Message.Content, nil
}

var _ Companion = (*Client)(nil)

// disabledCompanion はAPIキー未設定のときに使う実装。
type disabledCompanion struct{}

// NewDisabledCompanion は問い合わせを常に拒否する Companion を生成する。
func NewDisabledCompanion() Companion {
	return disabledCompanion{}
}

func (disabledCompanion) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", model.NewMessageRequiredError()
	}
	return "", model.NewAINotConfiguredError()
}
