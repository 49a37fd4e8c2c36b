package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/internal/transport/http/response"
	"github.com/you-humble/partsyard/platform/logger"
)

// SessionCookie holds the session token for staff routes.
const SessionCookie = "__session"

type SessionMinter interface {
	MintSession(ctx context.Context, idToken string) (string, error)
}

type handler struct {
	minter SessionMinter
	ttl    time.Duration
	secure bool
}

func NewAuthHandler(minter SessionMinter, ttl time.Duration, secure bool) *handler {
	return &handler{minter: minter, ttl: ttl, secure: secure}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/session", h.CreateSession)
		r.Post("/signout", h.SignOut)
	})
}

func (h *handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if req.IDToken == "" {
		response.Message(w, r, http.StatusBadRequest, "idToken is required")
		return
	}

	session, err := h.minter.MintSession(r.Context(), req.IDToken)
	if err != nil {
		logger.Warn(r.Context(), "sign in rejected", logger.ErrorF(err))
		response.Error(w, r, err)
		return
	}

	http.SetCookie(w, h.cookie(session, int(h.ttl.Seconds())))
	response.JSON(w, r, http.StatusOK, dto.StatusResponse{Status: "success"})
}

func (h *handler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))
	response.JSON(w, r, http.StatusOK, dto.StatusResponse{Status: "success"})
}

func (h *handler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
