package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/mocks"
)

const ttl = 5 * 24 * time.Hour

func newRouter(t *testing.T, secure bool) (chi.Router, *mocks.MockSessionMinter) {
	minter := mocks.NewMockSessionMinter(t)
	r := chi.NewRouter()
	NewAuthHandler(minter, ttl, secure).Register(r)
	return r, minter
}

func post(r http.Handler, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	require.FailNow(t, "session cookie not set")
	return nil
}

func TestCreateSession(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		body   string
		secure bool
		setup  func(m *mocks.MockSessionMinter)
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:   "sets cookie",
			body:   `{"idToken":"id-token"}`,
			secure: true,
			setup: func(m *mocks.MockSessionMinter) {
				m.On("MintSession", mock.Anything, "id-token").Return("session-token", nil).Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())

				c := sessionCookie(t, rec)
				assert.Equal(t, "session-token", c.Value)
				assert.Equal(t, int(ttl.Seconds()), c.MaxAge)
				assert.Equal(t, "/", c.Path)
				assert.True(t, c.HttpOnly)
				assert.True(t, c.Secure)
				assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
			},
		},
		{
			name: "insecure cookie for local runs",
			body: `{"idToken":"id-token"}`,
			setup: func(m *mocks.MockSessionMinter) {
				m.On("MintSession", mock.Anything, "id-token").Return("session-token", nil).Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.False(t, sessionCookie(t, rec).Secure)
			},
		},
		{
			name: "token without email",
			body: `{"idToken":"id-token"}`,
			setup: func(m *mocks.MockSessionMinter) {
				m.On("MintSession", mock.Anything, "id-token").
					Return("", errors.Join(model.ErrUnauthorized, errors.New("token has no email"))).
					Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Empty(t, rec.Result().Cookies())
			},
		},
		{
			name: "missing token",
			body: `{}`,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "malformed body",
			body: `{"idToken":`,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, m := newRouter(t, tt.secure)
			if tt.setup != nil {
				tt.setup(m)
			}

			tt.assert(t, post(r, "/api/auth/session", tt.body))
		})
	}
}

func TestSignOutClearsCookie(t *testing.T) {
	t.Parallel()

	r, _ := newRouter(t, false)

	rec := post(r, "/api/auth/signout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	c := sessionCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
