package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/morningword/internal/companion"
	"github.com/hitoshi/morningword/internal/model"
)

// CompanionHandler はAIコンパニオンのHTTPハンドラー。
type CompanionHandler struct {
	companion companion.Companion
}

// NewCompanionHandler はCompanionHandlerを生成する。
func NewCompanionHandler(c companion.Companion) *CompanionHandler {
	return &CompanionHandler{
		companion: c,
	}
}

// companionRequest は相談リクエストのボディ。
type companionRequest struct {
	Message string `json:"message"`
}

// companionResponse は相談への返答。
type companionResponse struct {
	Reply string `json:"reply"`
}

// Chat は相談メッセージをAIコンパニオンに中継する。
// POST /api/companion
func (h *CompanionHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req companionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "リクエストボディの解析に失敗しました。",
			Category: "validation",
			Action:   "正しいJSON形式でリクエストしてください。",
		})
		return
	}

	reply, err := h.companion.Reply(r.Context(), req.Message)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(companionResponse{Reply: reply})
}
