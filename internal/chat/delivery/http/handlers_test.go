package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/chat"
	"study-plan-assistant/internal/middleware"
	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/openrouter"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	processOut chat.ProcessMessageOutput
	approveOut chat.ApprovePlanOutput
	history    []openrouter.Message
	err        error

	gotMessage string
	gotApprove chat.ApprovePlanInput
	resetCount int
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
	m.gotMessage = input.Message
	return m.processOut, m.err
}

func (m *mockUseCase) ApprovePlan(ctx context.Context, sc model.Scope, input chat.ApprovePlanInput) (chat.ApprovePlanOutput, error) {
	m.gotApprove = input
	return m.approveOut, m.err
}

func (m *mockUseCase) History(ctx context.Context, sc model.Scope) ([]openrouter.Message, error) {
	return m.history, m.err
}

func (m *mockUseCase) Reset(ctx context.Context, sc model.Scope) error {
	m.resetCount++
	return m.err
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(nopLogger{}, 6000)
	RegisterRoutes(r.Group("/api/v1"), New(nopLogger{}, uc), mw)
	return r
}

func doReq(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(middleware.HeaderUserID, "u1")
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessage(t *testing.T) {
	uc := &mockUseCase{processOut: chat.ProcessMessageOutput{Reply: "hello back"}}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/chat/messages", `{"message":"hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.gotMessage != "hello" {
		t.Errorf("message = %q", uc.gotMessage)
	}

	var resp struct {
		Data processResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Data.Reply != "hello back" {
		t.Errorf("reply = %q", resp.Data.Reply)
	}
}

func TestSendMessageValidation(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	w := doReq(r, http.MethodPost, "/api/v1/chat/messages", `{"message":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty message should 400, got %d", w.Code)
	}
}

func TestSendMessageErrorMapping(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	cases := []struct {
		err  error
		code int
	}{
		{chat.ErrTurnInProgress, http.StatusConflict},
		{chat.ErrAssistantUnavailable, http.StatusServiceUnavailable},
		{chat.ErrEmptyMessage, http.StatusBadRequest},
	}
	for _, tc := range cases {
		uc.err = tc.err
		w := doReq(r, http.MethodPost, "/api/v1/chat/messages", `{"message":"x"}`)
		if w.Code != tc.code {
			t.Errorf("%v should map to %d, got %d", tc.err, tc.code, w.Code)
		}
	}
}

func TestApprovePlanHandler(t *testing.T) {
	uc := &mockUseCase{approveOut: chat.ApprovePlanOutput{Message: "done"}}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/chat/plan/approve", `{"indexes":[0,1],"export_to_calendar":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(uc.gotApprove.Indexes) != 2 || !uc.gotApprove.ExportToCalendar {
		t.Errorf("input = %+v", uc.gotApprove)
	}

	uc.err = chat.ErrNoPendingPlan
	w = doReq(r, http.MethodPost, "/api/v1/chat/plan/approve", `{}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("no pending plan should 404, got %d", w.Code)
	}

	uc.err = chat.ErrPlanConflicts
	w = doReq(r, http.MethodPost, "/api/v1/chat/plan/approve", `{}`)
	if w.Code != http.StatusConflict {
		t.Errorf("conflicts should 409, got %d", w.Code)
	}
}

func TestHistoryAndReset(t *testing.T) {
	uc := &mockUseCase{history: []openrouter.Message{
		{Role: openrouter.RoleUser, Content: "hi"},
		{Role: openrouter.RoleAssistant, Content: "hello"},
	}}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodGet, "/api/v1/chat/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data historyResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Count != 2 || resp.Data.Messages[1].Content != "hello" {
		t.Errorf("history = %+v", resp.Data)
	}

	w = doReq(r, http.MethodDelete, "/api/v1/chat/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.resetCount != 1 {
		t.Errorf("reset count = %d", uc.resetCount)
	}
}
