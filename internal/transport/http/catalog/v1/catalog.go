package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/partsyard/internal/converter"
	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/internal/transport/http/response"
	"github.com/you-humble/partsyard/platform/logger"
)

const photoCacheControl = "public, max-age=86400"

type StorefrontService interface {
	ListAvailable(ctx context.Context, q model.PartsQuery) (*model.PartsPage, error)
	PartByID(ctx context.Context, id string) (*model.Part, error)
	Recent(ctx context.Context, n int) ([]*model.Part, error)
	AvailableIDs(ctx context.Context) ([]string, error)
}

type PhotoReader interface {
	Get(ctx context.Context, name string) ([]byte, string, error)
}

type handler struct {
	svc    StorefrontService
	photos PhotoReader
	callUs string
}

func NewCatalogHandler(svc StorefrontService, photos PhotoReader, phone string) *handler {
	return &handler{svc: svc, photos: photos, callUs: phone}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/api/v1/parts", func(r chi.Router) {
		r.Get("/", h.ListParts)
		r.Get("/recent", h.RecentParts)
		r.Get("/ids", h.PartIDs)
		r.Get("/{id}", h.GetPart)
	})
	r.Get("/photos/*", h.GetPhoto)
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	q, page := listQuery(r)

	res, err := h.svc.ListAvailable(r.Context(), q)
	if err != nil {
		if errors.Is(err, model.ErrDataUnavailable) {
			response.JSON(w, r, http.StatusOK, dto.PublicPage{ // 200, degraded
				Parts:       []dto.PublicPart{},
				Unavailable: true,
				CallUs:      h.callUs,
			})
			return
		}
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.PublicPage{
		Parts:      converter.PartsToPublicDTO(res.Parts),
		Total:      res.Total,
		HasMore:    res.HasMore,
		Page:       page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(res.Total, q.PageSize),
	})
}

func (h *handler) RecentParts(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	parts, err := h.svc.Recent(r.Context(), max(n, 0))
	if err != nil {
		if errors.Is(err, model.ErrDataUnavailable) {
			response.JSON(w, r, http.StatusOK, dto.RecentResponse{ // 200, degraded
				Parts:       []dto.PublicPart{},
				Unavailable: true,
				CallUs:      h.callUs,
			})
			return
		}
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.RecentResponse{Parts: converter.PartsToPublicDTO(parts)})
}

func (h *handler) PartIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.AvailableIDs(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	response.JSON(w, r, http.StatusOK, dto.IDsResponse{IDs: ids})
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.PartByID(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		response.JSON(w, r, http.StatusOK, converter.PartToPublicDTO(p))
	case errors.Is(err, model.ErrPartNotFound), errors.Is(err, model.ErrInvalidArgument):
		response.Message(w, r, http.StatusNotFound, "part not found") // 404
	case errors.Is(err, model.ErrDataUnavailable):
		response.JSON(w, r, http.StatusServiceUnavailable, dto.Error{ // 503
			Error:  "inventory temporarily unavailable",
			Retry:  true,
			CallUs: h.callUs,
		})
	default:
		response.Error(w, r, err)
	}
}

func (h *handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if name == "" {
		response.Message(w, r, http.StatusNotFound, "photo not found")
		return
	}

	data, contentType, err := h.photos.Get(r.Context(), name)
	if err != nil {
		if !errors.Is(err, model.ErrPhotoNotFound) {
			logger.Error(r.Context(), "read photo", logger.String("name", name), logger.ErrorF(err))
		}
		response.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", photoCacheControl)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn(r.Context(), "write photo", logger.ErrorF(err))
	}
}

// listQuery reads the public filters. Malformed numbers fall back to defaults.
func listQuery(r *http.Request) (model.PartsQuery, int) {
	v := r.URL.Query()

	page, err := strconv.Atoi(v.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	year, _ := strconv.Atoi(v.Get("year"))

	search := v.Get("q")
	if search == "" {
		search = v.Get("search")
	}

	q := model.PartsQuery{
		Category:      model.Category(v.Get("category")),
		MakeContains:  v.Get("make"),
		ModelContains: v.Get("model"),
		Year:          max(year, 0),
		Search:        search,
		PageSize:      model.PublicPageSize,
		Offset:        (page - 1) * model.PublicPageSize,
		Sort: model.Sort{
			Field:     model.SortField(v.Get("sort")),
			Direction: model.SortDirection(v.Get("dir")),
		},
	}
	return q, page
}

func totalPages(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
