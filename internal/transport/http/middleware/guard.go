package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/response"
)

const (
	adminPrefix    = "/admin"
	adminAPIPrefix = "/admin/api"
	loginPath      = "/admin/login"
)

// Guard keeps anonymous visitors out of /admin. It checks only that the
// session cookie is present; handlers verify it.
func Guard(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !underPrefix(path, adminPrefix) || path == loginPath {
				next.ServeHTTP(w, r)
				return
			}

			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				next.ServeHTTP(w, r)
				return
			}

			if underPrefix(path, adminAPIPrefix) {
				response.Error(w, r, model.ErrUnauthorized)
				return
			}

			http.Redirect(w, r, loginPath+"?redirect="+url.QueryEscape(path), http.StatusFound)
		})
	}
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
