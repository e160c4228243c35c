package sms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/morningword/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func TestTwilioClient_Send(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Fatalf("フォームのパースに失敗: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer server.Close()

	client := NewTwilioClient(server.Client(), testLogger(), "AC000", "token000", "+15550001111")
	client.baseURL = server.URL

	err := client.Send(context.Background(), "+15552223333", "Good morning.")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/AC000/Messages.json" {
		t.Errorf("リクエストパスが不正: %s", gotPath)
	}
	if gotUser != "AC000" || gotPass != "token000" {
		t.Errorf("Basic認証の資格情報が不正: %s / %s", gotUser, gotPass)
	}
	if gotTo != "+15552223333" || gotFrom != "+15550001111" || gotBody != "Good morning." {
		t.Errorf("フォーム値が不正: to=%s from=%s body=%s", gotTo, gotFrom, gotBody)
	}
}

func TestTwilioClient_SendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
	}))
	defer server.Close()

	client := NewTwilioClient(server.Client(), testLogger(), "AC000", "token000", "+15550001111")
	client.baseURL = server.URL

	err := client.Send(context.Background(), "not-a-number", "hi")
	if err == nil {
		t.Fatal("エラーが返るべき")
	}
	if !strings.Contains(err.Error(), "Invalid 'To' Phone Number") {
		t.Errorf("Twilioのエラーメッセージが含まれない: %v", err)
	}
}

func TestTwilioClient_SendContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewTwilioClient(server.Client(), testLogger(), "AC000", "token000", "+15550001111")
	client.baseURL = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.Send(ctx, "+15552223333", "hi"); err == nil {
		t.Fatal("キャンセル済みコンテキストでエラーが返るべき")
	}
}

func TestDisabledSender(t *testing.T) {
	err := NewDisabledSender().Send(context.Background(), "+15552223333", "hi")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("APIErrorが返るべき: %v", err)
	}
	if apiErr.Code != model.ErrCodeSMSNotConfigured {
		t.Errorf("エラーコードが不正: %s", apiErr.Code)
	}
}
