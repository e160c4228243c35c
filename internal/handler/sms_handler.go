package handler

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/http"
)

// CommandResponderInterface は受信SMSハンドラーが必要とするインターフェース。
type CommandResponderInterface interface {
	// Respond は受信メッセージを解釈し、返信本文を返す。
	Respond(ctx context.Context, from, body string) (string, error)
}

// SMSHandler はTwilio受信Webhook（TwiML応答）のHTTPハンドラー。
type SMSHandler struct {
	responder CommandResponderInterface
	logger    *slog.Logger
}

// NewSMSHandler はSMSHandlerを生成する。
func NewSMSHandler(responder CommandResponderInterface, logger *slog.Logger) *SMSHandler {
	return &SMSHandler{
		responder: responder,
		logger:    logger,
	}
}

// twimlResponse はTwiMLの<Response><Message>エンベロープ。
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// fallbackReply はコマンド処理が失敗した場合の返信。
// Webhookに5xxを返すとTwilio側でリトライや不達扱いになるため、常に200でTwiMLを返す。
const fallbackReply = "Sorry, something went wrong on our end. Please try again in a moment."

// Incoming は受信SMSを処理しTwiMLで返信する。
// POST /sms （Twilioのform-encoded Webhook: From, Body）
func (h *SMSHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeTwiML(w, fallbackReply)
		return
	}

	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")

	reply, err := h.responder.Respond(r.Context(), from, body)
	if err != nil {
		h.logger.Error("受信SMSコマンドの処理に失敗しました",
			slog.String("error", err.Error()),
		)
		h.writeTwiML(w, fallbackReply)
		return
	}

	h.writeTwiML(w, reply)
}

// writeTwiML はTwiMLエンベロープを書き出す。
func (h *SMSHandler) writeTwiML(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/xml")

	out, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		// Messageは常にマーシャル可能な文字列なのでここには到達しない
		h.logger.Error("TwiMLの生成に失敗しました", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Write([]byte(xml.Header + string(out)))
}
