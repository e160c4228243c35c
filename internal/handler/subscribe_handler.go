package handler

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/subscriber"
)

// SubscriberServiceInterface は購読ハンドラーが必要とするサービスインターフェース。
type SubscriberServiceInterface interface {
	// Subscribe は新規購読を登録する。
	Subscribe(ctx context.Context, input subscriber.SubscribeInput) (*model.Subscriber, error)
	// Deactivate は購読を解除する（履歴行は残す）。
	Deactivate(ctx context.Context, id string) (*model.Subscriber, error)
	// CountActive はアクティブな購読者数を返す。
	CountActive(ctx context.Context) (int, error)
}

// SubscribeHandler は購読登録・解除・統計のHTTPハンドラー。
type SubscribeHandler struct {
	service SubscriberServiceInterface
}

// NewSubscribeHandler はSubscribeHandlerを生成する。
func NewSubscribeHandler(service SubscriberServiceInterface) *SubscribeHandler {
	return &SubscribeHandler{
		service: service,
	}
}

// subscribeRequest は購読登録リクエストのボディ。
type subscribeRequest struct {
	Phone    string `json:"phone"`
	Theme    string `json:"theme"`
	Timezone string `json:"timezone"`
	SendTime string `json:"sendTime"`
}

// subscribeResponse は購読登録成功時のレスポンス。
type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statsResponse は公開統計のレスポンス。
type statsResponse struct {
	Count int `json:"count"`
}

// apiErrorResponse はAPIエラーレスポンスのJSON構造。
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// Subscribe は購読登録を処理する。
// POST /api/subscribe
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "リクエストボディの解析に失敗しました。",
			Category: "validation",
			Action:   "正しいJSON形式でリクエストしてください。",
		})
		return
	}

	_, err := h.service.Subscribe(r.Context(), subscriber.SubscribeInput{
		Phone:    req.Phone,
		Theme:    req.Theme,
		Timezone: req.Timezone,
		SendTime: req.SendTime,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(subscribeResponse{
		Success: true,
		Message: "Subscribed! Check your phone for a welcome message.",
	})
}

// Stats はアクティブ購読者数を返す。
// GET /api/stats
func (h *SubscribeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountActive(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statsResponse{Count: count})
}

// unsubscribePage は解除確認ページのHTMLテンプレート。
// SMSの解除リンクから遷移するスタンドアロンページのため、テンプレートはここに埋め込む。
var unsubscribePage = template.Must(template.New("unsubscribe").Parse(`<!DOCTYPE html><html><head><meta charset="UTF-8"><title>{{.Title}} - Morning Word</title>
<link href="https://fonts.googleapis.com/css2?family=Playfair+Display:ital,wght@0,400;1,400&family=Lato:wght@300;400&display=swap" rel="stylesheet">
<style>body{font-family:'Lato',sans-serif;background:#fdf6ec;display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0}
.box{background:white;border:1px solid rgba(201,146,42,0.2);border-radius:2px;padding:48px;max-width:440px;text-align:center;box-shadow:0 8px 40px rgba(74,46,10,0.08)}
h1{font-family:'Playfair Display',serif;color:#4a2e0a;margin-bottom:16px}p{color:#9a7a55;line-height:1.7}a{color:#c9922a}
.icon{font-size:2.5rem;margin-bottom:16px}</style></head>
<body><div class="box"><div class="icon">{{.Icon}}</div><h1>{{.Title}}</h1><p>{{.Message}}</p></div></body></html>`))

// unsubscribePageData はテンプレートに渡す表示内容。
type unsubscribePageData struct {
	Title   string
	Icon    string
	Message template.HTML
}

// Unsubscribe はトークン付きリンクからの購読解除を処理する。
// GET /unsubscribe?token=<id>
// 無効なトークンでも200でページを返す（結果はページ内容で伝える）。
func (h *SubscribeHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	data := unsubscribePageData{
		Title:   "Unsubscribed",
		Icon:    "🙏",
		Message: `You've been removed from Morning Word. We're sorry to see you go! You can always re-subscribe at <a href="/">the homepage</a>.`,
	}

	if _, err := h.service.Deactivate(r.Context(), token); err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeSubscriberNotFound {
			data = unsubscribePageData{
				Title:   "Not Found",
				Icon:    "❌",
				Message: "That unsubscribe link is invalid or already used.",
			}
		} else {
			handleServiceError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := unsubscribePage.Execute(w, data); err != nil {
		slog.Error("failed to render unsubscribe page", slog.String("error", err.Error()))
	}
}

// writeAPIErrorResponse はAPIエラーをJSONレスポンスとして書き出す。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		statusCode := mapAPIErrorToHTTPStatus(apiErr)
		writeAPIErrorResponse(w, statusCode, apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodePhoneThemeRequired,
		model.ErrCodeInvalidSendTime,
		model.ErrCodeInvalidTimezone,
		model.ErrCodeRequestRequired,
		model.ErrCodeMessageRequired:
		return http.StatusBadRequest
	case model.ErrCodeDuplicateSubscription:
		return http.StatusConflict
	case model.ErrCodeSubscriberNotFound, model.ErrCodePrayerNotFound:
		return http.StatusNotFound
	case model.ErrCodeSMSNotConfigured, model.ErrCodeAINotConfigured:
		return http.StatusServiceUnavailable
	case model.ErrCodeSMSSendFailed, model.ErrCodeAIUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
