package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
	"github.com/you-humble/partsyard/platform/logger"
)

const maxBodyBytes = 1 << 20

func JSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func Message(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, dto.Error{Error: msg})
}

// Error maps a service error onto a status code and body.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr *model.ValidationError

	switch {
	case errors.As(err, &verr):
		JSON(w, r, http.StatusBadRequest, dto.Error{ // 400
			Error:  "validation failed",
			Fields: verr.Fields,
		})
	case errors.Is(err, model.ErrInvalidArgument):
		Message(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrUnauthorized):
		Message(w, r, http.StatusUnauthorized, "unauthorized") // 401
	case errors.Is(err, model.ErrPartNotFound):
		Message(w, r, http.StatusNotFound, "part not found") // 404
	case errors.Is(err, model.ErrPhotoNotFound):
		Message(w, r, http.StatusNotFound, "photo not found") // 404
	case errors.Is(err, model.ErrConflict):
		Message(w, r, http.StatusConflict, "part already exists") // 409
	case errors.Is(err, model.ErrPayloadTooLarge):
		Message(w, r, http.StatusRequestEntityTooLarge, "file too large") // 413
	case errors.Is(err, model.ErrUnsupportedMedia):
		Message(w, r, http.StatusUnsupportedMediaType, "only image uploads are accepted") // 415
	case errors.Is(err, model.ErrDataUnavailable):
		JSON(w, r, http.StatusServiceUnavailable, dto.Error{ // 503
			Error: "data temporarily unavailable",
			Retry: true,
		})
	default:
		logger.Error(r.Context(), "unhandled error", logger.ErrorF(err))
		Message(w, r, http.StatusInternalServerError, "internal error") // 500
	}
}

// Decode reads a JSON body into dst, rejecting unknown fields.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(model.ErrInvalidArgument, err)
	}
	return nil
}
