package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	agendaHTTP "agenda-assistant/internal/agenda/delivery/http"
	"agenda-assistant/internal/agenda/repository/file"
	"agenda-assistant/internal/agenda/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func fixedClock() time.Time {
	return time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := file.New("", &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}
	uc := usecase.New(&mockLogger{}, repo, fixedClock, nil, "", "UTC")
	h := agendaHTTP.New(&mockLogger{}, uc)

	router := gin.New()
	agendaHTTP.RegisterRoutes(router.Group("/api/v1"), h)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope mirrors response.Resp with a raw data payload for re-decoding.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v (%s)", err, env.Data)
		}
	}
	return env
}

func TestCreateTask(t *testing.T) {
	router := newRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{
		"name": "Standup",
		"date": "2025-01-10",
		"time": "09:00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var data struct {
		Task struct {
			ID       int    `json:"id"`
			Name     string `json:"name"`
			Duration int    `json:"duration"`
			Priority int    `json:"priority"`
			Status   string `json:"status"`
		} `json:"task"`
		Total int `json:"total_conflicts"`
	}
	env := decode(t, w, &data)
	if env.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", env.ErrorCode)
	}
	if data.Task.ID != 1 || data.Task.Name != "Standup" || data.Task.Status != "Scheduled" {
		t.Errorf("task = %+v", data.Task)
	}
	if data.Task.Duration != 30 || data.Task.Priority != 3 {
		t.Errorf("defaults not applied: %+v", data.Task)
	}
	if data.Total != 0 {
		t.Errorf("total_conflicts = %d, want 0", data.Total)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{name: "missing date", body: gin.H{"time": "09:00"}, want: http.StatusBadRequest},
		{name: "missing time", body: gin.H{"date": "2025-01-10"}, want: http.StatusBadRequest},
		{name: "bad date format", body: gin.H{"date": "10/01/2025", "time": "09:00"}, want: http.StatusBadRequest},
		{name: "bad priority", body: gin.H{"date": "2025-01-10", "time": "09:00", "priority": 9}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/tasks", tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestCreateTaskDuplicate(t *testing.T) {
	router := newRouter(t)

	body := gin.H{"name": "Standup", "date": "2025-01-10", "time": "09:00"}
	if w := do(t, router, http.MethodPost, "/api/v1/tasks", body); w.Code != http.StatusOK {
		t.Fatalf("first create status = %d", w.Code)
	}

	w := do(t, router, http.MethodPost, "/api/v1/tasks", body)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want 409 (%s)", w.Code, w.Body.String())
	}
}

func TestDetailNotFound(t *testing.T) {
	router := newRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/tasks/42", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 (%s)", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/v1/tasks/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id status = %d, want 400", w.Code)
	}
}

func TestUpdateTaskSparse(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Standup", "date": "2025-01-10", "time": "09:00"})

	w := do(t, router, http.MethodPut, "/api/v1/tasks/1", gin.H{"time": "10:30"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	var task struct {
		Name string `json:"name"`
		Date string `json:"date"`
		Time string `json:"time"`
		Log  []struct {
			Action string `json:"action"`
		} `json:"log"`
	}
	decode(t, w, &task)
	if task.Time != "10:30" {
		t.Errorf("time = %q, want 10:30", task.Time)
	}
	if task.Name != "Standup" || task.Date != "2025-01-10" {
		t.Errorf("untouched fields changed: %+v", task)
	}
	if len(task.Log) != 1 || task.Log[0].Action != "edit" {
		t.Errorf("log = %+v, want one edit entry", task.Log)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Standup", "date": "2025-01-10", "time": "09:00"})

	w := do(t, router, http.MethodPut, "/api/v1/tasks/1", gin.H{"status": "Done", "comment": "wrapped up"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodPut, "/api/v1/tasks/1", gin.H{"status": "Archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status accepted: %d", w.Code)
	}
}

func TestDeleteTask(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Standup", "date": "2025-01-10", "time": "09:00"})

	if w := do(t, router, http.MethodDelete, "/api/v1/tasks/1", nil); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := do(t, router, http.MethodDelete, "/api/v1/tasks/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestPendingRoute(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Due", "date": "2025-01-09", "time": "09:00"})
	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Future", "date": "2025-06-01", "time": "09:00"})

	w := do(t, router, http.MethodGet, "/api/v1/tasks/pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var data struct {
		Tasks []struct {
			Name string `json:"name"`
		} `json:"tasks"`
		Total int `json:"total"`
	}
	decode(t, w, &data)
	if data.Total != 1 || len(data.Tasks) != 1 || data.Tasks[0].Name != "Due" {
		t.Errorf("pending = %+v", data)
	}
}

func TestConflictsRoute(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "A", "date": "2025-01-10", "time": "09:00"})
	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "B", "date": "2025-01-10", "time": "09:15"})

	w := do(t, router, http.MethodGet, "/api/v1/conflicts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var data struct {
		Conflicts []struct {
			A int `json:"a"`
			B int `json:"b"`
		} `json:"conflicts"`
		Total int `json:"total"`
	}
	decode(t, w, &data)
	if data.Total != 1 || len(data.Conflicts) != 1 {
		t.Fatalf("conflicts = %+v", data)
	}
	if data.Conflicts[0].A != 1 || data.Conflicts[0].B != 2 {
		t.Errorf("pair = %+v, want {1 2}", data.Conflicts[0])
	}
}

func TestStatusSummaryRoute(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "A", "date": "2025-01-10", "time": "09:00"})

	w := do(t, router, http.MethodGet, "/api/v1/tasks/status-summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var data struct {
		Summary map[string]int `json:"summary"`
	}
	decode(t, w, &data)
	if data.Summary["Scheduled"] != 1 || data.Summary["Done"] != 0 {
		t.Errorf("summary = %+v", data.Summary)
	}
	if len(data.Summary) != 4 {
		t.Errorf("summary has %d statuses, want 4", len(data.Summary))
	}
}

func TestRescheduleRoute(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Blocker", "date": "2025-01-10", "time": "09:00", "duration": 60})
	do(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"name": "Victim", "date": "2025-01-10", "time": "09:30"})

	w := do(t, router, http.MethodGet, "/api/v1/tasks/2/reschedule", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	var data struct {
		Suggestions []string `json:"suggestions"`
	}
	decode(t, w, &data)
	want := []string{"10:00", "10:15", "10:30"}
	if len(data.Suggestions) != len(want) {
		t.Fatalf("suggestions = %v, want %v", data.Suggestions, want)
	}
	for i := range want {
		if data.Suggestions[i] != want[i] {
			t.Errorf("suggestions[%d] = %q, want %q", i, data.Suggestions[i], want[i])
		}
	}
}
