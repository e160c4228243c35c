package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/morningword/internal/model"
	"github.com/hitoshi/morningword/internal/prayer"
)

// PrayerServiceInterface は祈りのリクエストハンドラーが必要とするサービスインターフェース。
type PrayerServiceInterface interface {
	// Create はリクエストを投稿する。
	Create(ctx context.Context, input prayer.CreateInput) (*model.Prayer, error)
	// List は新しい順にリクエスト一覧を返す。
	List(ctx context.Context) ([]*model.Prayer, error)
	// Prayed は「祈りました」カウンターを加算する。
	Prayed(ctx context.Context, id string) (int, error)
}

// PrayerHandler は祈りのリクエスト掲示板のHTTPハンドラー。
type PrayerHandler struct {
	service PrayerServiceInterface
}

// NewPrayerHandler はPrayerHandlerを生成する。
func NewPrayerHandler(service PrayerServiceInterface) *PrayerHandler {
	return &PrayerHandler{
		service: service,
	}
}

// createPrayerRequest は投稿リクエストのボディ。
type createPrayerRequest struct {
	Name     string `json:"name"`
	Request  string `json:"request"`
	Category string `json:"category"`
}

// prayerResponse はリクエスト1件のAPIレスポンス。
type prayerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Request     string    `json:"request"`
	Category    string    `json:"category"`
	PrayedCount int       `json:"prayedCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// createPrayerResponse は投稿成功時のレスポンス。
type createPrayerResponse struct {
	Success bool           `json:"success"`
	Prayer  prayerResponse `json:"prayer"`
}

// prayedResponse はカウンター加算成功時のレスポンス。
type prayedResponse struct {
	Success     bool `json:"success"`
	PrayedCount int  `json:"prayedCount"`
}

func toPrayerResponse(p *model.Prayer) prayerResponse {
	return prayerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Request:     p.Request,
		Category:    p.Category,
		PrayedCount: p.PrayedCount,
		CreatedAt:   p.CreatedAt,
	}
}

// List はリクエスト一覧を新しい順で返す。
// GET /api/prayers
func (h *PrayerHandler) List(w http.ResponseWriter, r *http.Request) {
	prayers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// nilスライスでも空配列としてシリアライズする
	out := make([]prayerResponse, 0, len(prayers))
	for _, p := range prayers {
		out = append(out, toPrayerResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Create はリクエストを投稿する。
// POST /api/prayers
func (h *PrayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPrayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "リクエストボディの解析に失敗しました。",
			Category: "validation",
			Action:   "正しいJSON形式でリクエストしてください。",
		})
		return
	}

	p, err := h.service.Create(r.Context(), prayer.CreateInput{
		Name:     req.Name,
		Request:  req.Request,
		Category: req.Category,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createPrayerResponse{
		Success: true,
		Prayer:  toPrayerResponse(p),
	})
}

// Prayed は「祈りました」カウンターを加算する。
// POST /api/prayers/{id}/prayed
func (h *PrayerHandler) Prayed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	count, err := h.service.Prayed(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prayedResponse{
		Success:     true,
		PrayedCount: count,
	})
}
