package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadPhoto stores an image for the part and returns its public URL.
// The part does not have to exist yet.
func (s *service) UploadPhoto(
	ctx context.Context,
	actor model.Identity,
	partID string,
	filename string,
	contentType string,
	data []byte,
) (string, error) {
	const op = "admin.service.UploadPhoto"
	log := logger.With(
		logger.String("actor", actor.Email),
		logger.String("part_id", partID),
		logger.String("filename", filename),
	)

	if actor.Empty() {
		return "", fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	partID = strings.TrimSpace(partID)
	if _, err := uuid.Parse(partID); err != nil {
		return "", errors.Join(model.ErrInvalidArgument, errors.New("part id must be a uuid"))
	}
	if len(data) == 0 {
		return "", errors.Join(model.ErrInvalidArgument, errors.New("empty file"))
	}
	if s.maxPhotoBytes > 0 && int64(len(data)) > s.maxPhotoBytes {
		log.Warn(ctx, "photo too large", logger.Int("size", len(data)))
		return "", fmt.Errorf("%s: %w: limit is %d bytes", op, model.ErrPayloadTooLarge, s.maxPhotoBytes)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(contentType, "image/") || !strings.HasPrefix(detected.String(), "image/") {
		log.Warn(ctx, "rejected non-image upload",
			logger.String("declared", contentType),
			logger.String("detected", detected.String()),
		)
		return "", fmt.Errorf("%s: %w", op, model.ErrUnsupportedMedia)
	}

	name := PhotoObjectName(partID, filename, s.now().UnixMilli())

	url, err := s.blobs.Put(ctx, name, data, detected.String())
	if err != nil {
		log.Error(ctx, "blob put", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, errors.Join(model.ErrDataUnavailable, err))
	}

	log.Info(ctx, "photo uploaded", logger.String("url", url))
	return url, nil
}

// DeletePhoto removes a stored photo. Failures are logged, not returned.
func (s *service) DeletePhoto(ctx context.Context, actor model.Identity, url string) error {
	const op = "admin.service.DeletePhoto"

	if actor.Empty() {
		return fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("url must be non-empty"))
	}

	s.deletePhotos(ctx, []string{url})
	return nil
}

func (s *service) deletePhotos(ctx context.Context, urls []string) {
	for _, u := range urls {
		if err := s.blobs.Delete(ctx, u); err != nil {
			logger.Warn(ctx, "delete photo", logger.String("url", u), logger.ErrorF(err))
		}
	}
}

// PhotoObjectName builds parts/<id>/<unix millis>_<sanitized name>.
func PhotoObjectName(partID, filename string, unixMilli int64) string {
	safe := unsafeNameChars.ReplaceAllString(filename, "_")
	if safe == "" {
		safe = "photo"
	}
	return fmt.Sprintf("parts/%s/%d_%s", partID, unixMilli, safe)
}
