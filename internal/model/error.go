package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")        // 400
	ErrInvalidArgument    = errors.New("invalid argument")        // 400
	ErrUnauthorized       = errors.New("unauthorized")            // 401
	ErrPartNotFound       = errors.New("part not found")          // 404
	ErrPhotoNotFound      = errors.New("photo not found")         // 404
	ErrConflict           = errors.New("part already exists")     // 409
	ErrPartialBulkFailure = errors.New("partial bulk failure")    // 207
	ErrDataUnavailable    = errors.New("data unavailable")        // 503
	ErrMalformedDocument  = errors.New("malformed part document") // 500
	ErrUnsupportedMedia   = errors.New("unsupported media type")  // 415
	ErrPayloadTooLarge    = errors.New("payload too large")       // 413
)

// ValidationError lists a message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// BulkResult summarizes a bulk mutation.
type BulkResult struct {
	Requested int
	Succeeded int
	Failed    int
}

// BulkError reports a bulk mutation where some writes did not go through.
// Writes that succeeded stay applied.
type BulkError struct {
	Result BulkResult
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("%s: %d of %d failed", ErrPartialBulkFailure, e.Result.Failed, e.Result.Requested)
}

func (e *BulkError) Is(target error) bool { return target == ErrPartialBulkFailure }
