package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const cookieName = "__session"

func TestGuard(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	h := Guard(cookieName)(ok)

	tests := []struct {
		name         string
		path         string
		cookie       string
		wantStatus   int
		wantLocation string
	}{
		{name: "public path", path: "/api/v1/parts", wantStatus: http.StatusTeapot},
		{name: "lookalike prefix is public", path: "/administrator", wantStatus: http.StatusTeapot},
		{name: "login allowlisted", path: "/admin/login", wantStatus: http.StatusTeapot},
		{name: "page redirects", path: "/admin/parts/new", wantStatus: http.StatusFound, wantLocation: "/admin/login?redirect=%2Fadmin%2Fparts%2Fnew"},
		{name: "root redirects", path: "/admin", wantStatus: http.StatusFound, wantLocation: "/admin/login?redirect=%2Fadmin"},
		{name: "api answers 401", path: "/admin/api/parts", wantStatus: http.StatusUnauthorized},
		{name: "cookie present", path: "/admin/api/parts", cookie: "anything", wantStatus: http.StatusTeapot},
		{name: "empty cookie", path: "/admin", cookie: "", wantStatus: http.StatusFound, wantLocation: "/admin/login?redirect=%2Fadmin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
