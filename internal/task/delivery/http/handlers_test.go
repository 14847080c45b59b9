package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/middleware"
	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/task"
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
	listOut      task.ListOutput
	updateOut    model.Task
	conflictsOut []model.Task
	err          error

	gotScope     model.Scope
	gotList      task.ListInput
	gotConflicts task.CheckConflictInput
}

func (m *mockUseCase) Commit(ctx context.Context, sc model.Scope, input task.CommitInput) (task.CommitOutput, error) {
	return task.CommitOutput{}, m.err
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.gotScope = sc
	m.gotList = input
	return m.listOut, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	m.gotScope = sc
	return m.updateOut, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.gotScope = sc
	return m.err
}

func (m *mockUseCase) CheckTimeConflict(ctx context.Context, sc model.Scope, input task.CheckConflictInput) ([]model.Task, error) {
	m.gotScope = sc
	m.gotConflicts = input
	return m.conflictsOut, m.err
}

func newTestRouter(uc task.UseCase) *gin.Engine {
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

func TestListHandler(t *testing.T) {
	uc := &mockUseCase{listOut: task.ListOutput{
		Tasks: []model.Task{{ID: "t1", Title: "Math", Date: "2025-12-15"}},
		Count: 1,
	}}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodGet, "/api/v1/tasks?date=2025-12-15", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.gotScope.UserID != "u1" {
		t.Errorf("scope = %+v", uc.gotScope)
	}
	if uc.gotList.Date != "2025-12-15" {
		t.Errorf("date filter = %q", uc.gotList.Date)
	}

	var resp struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Count != 1 || resp.Data.Tasks[0].Title != "Math" {
		t.Errorf("body = %+v", resp.Data)
	}
}

func TestListHandlerBadDate(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	w := doReq(r, http.MethodGet, "/api/v1/tasks?date=15-12-2025", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", w.Code)
	}
}

func TestCheckConflictsHandler(t *testing.T) {
	uc := &mockUseCase{conflictsOut: []model.Task{{ID: "t1", Title: "Existing"}}}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodGet, "/api/v1/tasks/conflicts?date=2025-12-15&start_time=02:00+PM&end_time=03:00+PM&exclude_id=t9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.gotConflicts.ExcludeID != "t9" || uc.gotConflicts.Date != "2025-12-15" {
		t.Errorf("input = %+v", uc.gotConflicts)
	}

	var resp struct {
		Data conflictsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Data.HasConflict || resp.Data.Conflicts[0].Title != "Existing" {
		t.Errorf("body = %+v", resp.Data)
	}

	// Missing required query params.
	w = doReq(r, http.MethodGet, "/api/v1/tasks/conflicts?date=2025-12-15", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without times, got %d", w.Code)
	}
}

func TestUpdateHandler(t *testing.T) {
	uc := &mockUseCase{updateOut: model.Task{ID: "t1", Title: "Renamed"}}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodPut, "/api/v1/tasks/t1", `{"title":"Renamed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	uc.err = task.ErrNotFound
	w = doReq(r, http.MethodPut, "/api/v1/tasks/missing", `{"title":"X"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	uc.err = task.ErrInvalidTime
	w = doReq(r, http.MethodPut, "/api/v1/tasks/t1", `{"start_time":"99:99 XM"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doReq(r, http.MethodDelete, "/api/v1/tasks/t1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.err = task.ErrNotFound
	w = doReq(r, http.MethodDelete, "/api/v1/tasks/t1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandlersRequireAuth(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without identity header, got %d", w.Code)
	}
}
