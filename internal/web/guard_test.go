package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow/internal/session"
)

func guardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RouteGuard())

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", ok)
	r.GET("/login", ok)
	r.GET("/dashboard", ok)
	r.GET("/dashboard/settings", ok)
	r.GET("/dashboardfoo", ok)
	r.GET("/loginfoo", ok)

	return r
}

func guardRequest(t *testing.T, r http.Handler, path string, withCookie bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "anything"})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestRouteGuard_Matrix(t *testing.T) {
	r := guardRouter()

	tests := []struct {
		name       string
		path       string
		withCookie bool
		wantCode   int
		wantLoc    string
	}{
		{"dashboard without cookie", "/dashboard", false, http.StatusTemporaryRedirect, "/login"},
		{"nested dashboard without cookie", "/dashboard/settings", false, http.StatusTemporaryRedirect, "/login"},
		{"dashboard with cookie", "/dashboard", true, http.StatusOK, ""},
		{"login without cookie", "/login", false, http.StatusOK, ""},
		{"login with cookie", "/login", true, http.StatusTemporaryRedirect, "/dashboard"},
		{"landing without cookie", "/", false, http.StatusOK, ""},
		{"landing with cookie", "/", true, http.StatusOK, ""},
		{"lookalike dashboard path without cookie", "/dashboardfoo", false, http.StatusOK, ""},
		{"lookalike login path with cookie", "/loginfoo", true, http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := guardRequest(t, r, tc.path, tc.withCookie)

			if w.Code != tc.wantCode {
				t.Fatalf("got status %d, want %d", w.Code, tc.wantCode)
			}
			if loc := w.Header().Get("Location"); loc != tc.wantLoc {
				t.Fatalf("got Location %q, want %q", loc, tc.wantLoc)
			}
		})
	}
}

func TestRouteGuard_DoesNotDecodeTheCookie(t *testing.T) {
	r := guardRouter()

	// a garbage value still counts as a session for navigation purposes
	w := guardRequest(t, r, "/dashboard", false)
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("got status %d, want redirect", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "%%%not-json"})

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	if w2.Code != http.StatusOK {
		t.Fatalf("presence is the only check, got status %d", w2.Code)
	}
}
