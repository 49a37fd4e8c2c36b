package http

import (
	"errors"
	"net/http"

	"github.com/you-humble/partsyard/internal/converter"
	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/internal/transport/http/response"
)

func (h *handler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkStatusRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	res, err := h.admin.BulkSetStatus(r.Context(), currentIdentity(r), req.IDs, model.StockStatus(req.Status))
	writeBulk(w, r, res, err)
}

func (h *handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	res, err := h.admin.BulkDelete(r.Context(), currentIdentity(r), req.IDs)
	writeBulk(w, r, res, err)
}

// writeBulk answers 200 when every record succeeded and 207 when some failed.
func writeBulk(w http.ResponseWriter, r *http.Request, res *model.BulkResult, err error) {
	var bulkErr *model.BulkError

	switch {
	case err == nil:
		response.JSON(w, r, http.StatusOK, converter.BulkResultToDTO(res, "done"))
	case errors.As(err, &bulkErr):
		response.JSON(w, r, http.StatusMultiStatus, converter.BulkResultToDTO(&bulkErr.Result, "partial")) // 207
	default:
		response.Error(w, r, err)
	}
}
