package http

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/partsyard/internal/converter"
	"github.com/you-humble/partsyard/internal/model"
	authv1 "github.com/you-humble/partsyard/internal/transport/http/auth/v1"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/internal/transport/http/response"
	"github.com/you-humble/partsyard/platform/logger"
)

type CatalogService interface {
	List(ctx context.Context, q model.PartsQuery) (*model.PartsPage, error)
	PartByID(ctx context.Context, id string) (*model.Part, error)
	Aggregate(ctx context.Context) (*model.PartStats, error)
}

type AdminService interface {
	NewPartID() string
	Create(ctx context.Context, actor model.Identity, in model.PartInput, id string) (*model.Part, error)
	Update(ctx context.Context, actor model.Identity, id string, patch model.PartPatch) (*model.Part, error)
	SetStatus(ctx context.Context, actor model.Identity, id string, status model.StockStatus) error
	Delete(ctx context.Context, actor model.Identity, id string) error
	BulkSetStatus(ctx context.Context, actor model.Identity, ids []string, status model.StockStatus) (*model.BulkResult, error)
	BulkDelete(ctx context.Context, actor model.Identity, ids []string) (*model.BulkResult, error)
	UploadPhoto(ctx context.Context, actor model.Identity, partID, filename, contentType string, data []byte) (string, error)
	DeletePhoto(ctx context.Context, actor model.Identity, url string) error
}

type SessionVerifier interface {
	VerifySession(ctx context.Context, session string) (model.Identity, error)
}

type identityKey struct{}

type handler struct {
	catalog   CatalogService
	admin     AdminService
	sessions  SessionVerifier
	maxUpload int64
}

func NewAdminHandler(
	catalog CatalogService,
	admin AdminService,
	sessions SessionVerifier,
	maxPhotoBytes int64,
) *handler {
	return &handler{
		catalog:   catalog,
		admin:     admin,
		sessions:  sessions,
		maxUpload: maxPhotoBytes + multipartOverhead,
	}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/admin/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireIdentity)

		r.Get("/admin", h.Dashboard)

		r.Route("/admin/api", func(r chi.Router) {
			r.Get("/stats", h.Stats)

			r.Get("/parts", h.ListParts)
			r.Post("/parts", h.CreatePart)
			r.Post("/parts/ids", h.NewPartID)
			r.Post("/parts/bulk/status", h.BulkStatus)
			r.Post("/parts/bulk/delete", h.BulkDelete)

			r.Get("/parts/{id}", h.GetPart)
			r.Patch("/parts/{id}", h.UpdatePart)
			r.Delete("/parts/{id}", h.DeletePart)
			r.Post("/parts/{id}/status", h.SetStatus)
			r.Post("/parts/{id}/photos", h.UploadPhoto)

			r.Delete("/photos", h.DeletePhoto)
		})
	})
}

// RequireIdentity verifies the session cookie before any staff handler runs.
// The guard only checks presence; a forged cookie stops here.
func (h *handler) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(authv1.SessionCookie)
		if err != nil || c.Value == "" {
			response.Error(w, r, model.ErrUnauthorized)
			return
		}

		id, err := h.sessions.VerifySession(r.Context(), c.Value)
		if err != nil {
			logger.Warn(r.Context(), "session verification failed", logger.ErrorF(err))
			response.Error(w, r, model.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, id)
		ctx = logger.ContextWithFields(ctx, logger.String("actor", id.Email))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentIdentity(r *http.Request) model.Identity {
	id, _ := r.Context().Value(identityKey{}).(model.Identity)
	return id
}

var loginPage = template.Must(template.New("login").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Staff sign in</title></head>
<body>
<h1>Staff sign in</h1>
<p>Sign in with your staff account to continue.</p>
<form id="signin" data-redirect="{{.Redirect}}"></form>
</body>
</html>
`))

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	redirect := r.URL.Query().Get("redirect")
	if !strings.HasPrefix(redirect, "/admin") {
		redirect = "/admin"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginPage.Execute(w, struct{ Redirect string }{redirect}); err != nil {
		logger.Error(r.Context(), "render login page", logger.ErrorF(err))
	}
}

func (h *handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	stats, err := h.catalog.Aggregate(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.Dashboard{
		User:  dto.Identity{Email: id.Email, Name: id.Name},
		Stats: converter.StatsToDTO(stats),
	})
}

func (h *handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Aggregate(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.StatsToDTO(stats))
}
