package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow/internal/http/handlers"
)

type messageResponse struct {
	Message string `json:"message"`
}

func bindRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/register", func(ctx *gin.Context) {
		var req handlers.RegisterRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusOK)
	})

	return r
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestBindJSON_MissingFieldUsesJSONName(t *testing.T) {
	r := bindRouter()

	w := postJSON(r, `{"username":"jdoe","email":"j@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp messageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if !strings.HasPrefix(resp.Message, "passwordHash ") {
		t.Fatalf("expected message to lead with the JSON field name, got %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "is required") {
		t.Fatalf("expected a required-field message, got %q", resp.Message)
	}
}

func TestBindJSON_EmailRule(t *testing.T) {
	r := bindRouter()

	w := postJSON(r, `{"username":"jdoe","email":"nope","passwordHash":"abc"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp messageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}

	if resp.Message != "email must be a valid email address" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestBindJSON_MalformedJSON(t *testing.T) {
	r := bindRouter()

	w := postJSON(r, `{"username":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp messageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}

	if resp.Message != "Invalid request body" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
