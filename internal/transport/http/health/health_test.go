package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReady(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("no reachable servers") }

	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "all up", checks: map[string]Pinger{"mongo": ok}, wantStatus: http.StatusOK, wantBody: "SERVING"},
		{name: "mongo down", checks: map[string]Pinger{"mongo": down}, wantStatus: http.StatusServiceUnavailable, wantBody: "NOT_SERVING: mongo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Ready(tt.checks)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
