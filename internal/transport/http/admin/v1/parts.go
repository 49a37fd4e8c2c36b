package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/partsyard/internal/converter"
	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/internal/transport/http/response"
)

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	q, err := adminQuery(r.URL.Query())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	page, err := h.catalog.List(r.Context(), q)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.AdminPage{
		Parts:      converter.PartsToDTO(page.Parts),
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	})
}

func (h *handler) NewPartID(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, dto.IDResponse{ID: h.admin.NewPartID()})
}

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.admin.Create(r.Context(), currentIdentity(r), converter.CreateRequestToInput(req), req.ID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, converter.PartToDTO(p))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.PartByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.PartToDTO(p))
}

func (h *handler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePartRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.admin.Update(r.Context(), currentIdentity(r), chi.URLParam(r, "id"), converter.UpdateRequestToPatch(req))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.PartToDTO(p))
}

func (h *handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	err := h.admin.SetStatus(r.Context(), currentIdentity(r), chi.URLParam(r, "id"), model.StockStatus(req.Status))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.Delete(r.Context(), currentIdentity(r), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// adminQuery reads the staff list filters. Unlike the storefront,
// malformed numbers are rejected.
func adminQuery(v url.Values) (model.PartsQuery, error) {
	year, err := optionalInt(v, "year")
	if err != nil {
		return model.PartsQuery{}, err
	}
	pageSize, err := optionalInt(v, "pageSize")
	if err != nil {
		return model.PartsQuery{}, err
	}

	return model.PartsQuery{
		Status:    model.StockStatus(v.Get("status")),
		Category:  model.Category(v.Get("category")),
		Condition: model.Condition(v.Get("condition")),
		Make:      v.Get("make"),
		Year:      year,
		Search:    v.Get("q"),
		Paging:    model.PagingCursor,
		Cursor:    v.Get("cursor"),
		PageSize:  pageSize,
		Sort: model.Sort{
			Field:     model.SortField(v.Get("sort")),
			Direction: model.SortDirection(v.Get("dir")),
		},
	}, nil
}

func optionalInt(v url.Values, key string) (int, error) {
	raw := v.Get(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Join(model.ErrInvalidArgument, fmt.Errorf("%s must be an integer", key))
	}
	return n, nil
}
