package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/taskflowhq/taskflow/internal/domain/task"
)

func TestTasks_CRUDFlow(t *testing.T) {
	router := setupRouter(t)

	// empty list to start
	w := doRequest(router, http.MethodGet, "/api/tasks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list got status %d, want %d", w.Code, http.StatusOK)
	}

	var list []task.Task
	mustReadJSON(t, w, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty task list, got %d items", len(list))
	}

	// create
	w2 := doRequest(router, http.MethodPost, "/api/tasks", `{"title":"Ship the report","description":"Q3 numbers"}`)
	if w2.Code != http.StatusCreated {
		t.Fatalf("create got status %d, want %d, body=%s", w2.Code, http.StatusCreated, w2.Body.String())
	}

	var created task.Task
	mustReadJSON(t, w2, &created)
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if loc := w2.Header().Get("Location"); loc != "/api/tasks/1" {
		t.Fatalf("expected Location header /api/tasks/1, got %q", loc)
	}

	// fetch it back
	w3 := doRequest(router, http.MethodGet, "/api/tasks/1", "")
	if w3.Code != http.StatusOK {
		t.Fatalf("get got status %d, want %d", w3.Code, http.StatusOK)
	}

	var got task.Task
	mustReadJSON(t, w3, &got)
	if got.Title != "Ship the report" || got.IsCompleted {
		t.Fatalf("unexpected task: %+v", got)
	}

	// update
	w4 := doRequest(router, http.MethodPut, "/api/tasks/1", `{"title":"Ship the report","description":"Q3 numbers","isCompleted":true}`)
	if w4.Code != http.StatusNoContent {
		t.Fatalf("update got status %d, want %d, body=%s", w4.Code, http.StatusNoContent, w4.Body.String())
	}

	w5 := doRequest(router, http.MethodGet, "/api/tasks/1", "")
	mustReadJSON(t, w5, &got)
	if !got.IsCompleted {
		t.Fatalf("expected task to be completed after update")
	}

	// delete
	w6 := doRequest(router, http.MethodDelete, "/api/tasks/1", "")
	if w6.Code != http.StatusNoContent {
		t.Fatalf("delete got status %d, want %d", w6.Code, http.StatusNoContent)
	}

	w7 := doRequest(router, http.MethodGet, "/api/tasks/1", "")
	if w7.Code != http.StatusNotFound {
		t.Fatalf("get after delete got status %d, want %d", w7.Code, http.StatusNotFound)
	}
}

func TestTasks_UnknownIDIs404(t *testing.T) {
	router := setupRouter(t)

	for _, tc := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/tasks/99", ""},
		{http.MethodPut, "/api/tasks/99", `{"title":"x","description":"","isCompleted":false}`},
		{http.MethodDelete, "/api/tasks/99", ""},
	} {
		w := doRequest(router, tc.method, tc.path, tc.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s got status %d, want %d", tc.method, tc.path, w.Code, http.StatusNotFound)
		}
	}
}

func TestTasks_ListReflectsCreates(t *testing.T) {
	router := setupRouter(t)

	for _, title := range []string{"one", "two", "three"} {
		b, _ := json.Marshal(map[string]string{"title": title})
		w := doRequest(router, http.MethodPost, "/api/tasks", string(b))
		if w.Code != http.StatusCreated {
			t.Fatalf("create got status %d, body=%s", w.Code, w.Body.String())
		}
	}

	w := doRequest(router, http.MethodGet, "/api/tasks", "")

	var list []task.Task
	mustReadJSON(t, w, &list)

	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}
	if list[2].ID != 3 {
		t.Fatalf("expected sequential ids, got %+v", list)
	}
}
