package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/internal/transport/http/response"
	"github.com/you-humble/partsyard/platform/logger"
)

const (
	multipartOverhead = 1 << 20
	photoField        = "file"
)

func (h *handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile(photoField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, r, model.ErrPayloadTooLarge)
			return
		}
		response.Error(w, r, errors.Join(model.ErrInvalidArgument, err))
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.Warn(r.Context(), "close upload", logger.ErrorF(cerr))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, r, errors.Join(model.ErrInvalidArgument, err))
		return
	}

	url, err := h.admin.UploadPhoto(
		r.Context(),
		currentIdentity(r),
		chi.URLParam(r, "id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, dto.PhotoResponse{URL: url})
}

func (h *handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	var req dto.PhotoRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.admin.DeletePhoto(r.Context(), currentIdentity(r), req.URL); err != nil {
		response.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
