package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

const defaultContentType = "application/octet-stream"

// objectStore is the part of jetstream.ObjectStore the photo store uses.
type objectStore interface {
	Put(ctx context.Context, meta jetstream.ObjectMeta, r io.Reader) (*jetstream.ObjectInfo, error)
	Get(ctx context.Context, name string, opts ...jetstream.GetObjectOpt) (jetstream.ObjectResult, error)
	Delete(ctx context.Context, name string) error
}

type store struct {
	objects objectStore
	baseURL string
}

// Open connects to the bucket, creating it on first use.
func Open(ctx context.Context, js jetstream.JetStream, bucket, publicBaseURL string) (*store, error) {
	const op = "blob.Open"

	objects, err := js.ObjectStore(ctx, bucket)
	if err != nil {
		if !errors.Is(err, jetstream.ErrBucketNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		logger.Info(ctx, "creating photo bucket", logger.String("bucket", bucket))
		objects, err = js.CreateObjectStore(ctx, jetstream.ObjectStoreConfig{
			Bucket:      bucket,
			Description: "Part photos",
		})
		if err != nil {
			return nil, fmt.Errorf("%s: create bucket: %w", op, err)
		}
	}

	return newStore(objects, publicBaseURL), nil
}

func newStore(objects objectStore, publicBaseURL string) *store {
	return &store{
		objects: objects,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put stores data under name and returns its public URL.
func (s *store) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	const op = "blob.store.Put"

	if contentType == "" {
		contentType = defaultContentType
	}

	_, err := s.objects.Put(ctx, jetstream.ObjectMeta{
		Name: name,
		Headers: nats.Header{
			"Content-Type": []string{contentType},
		},
	}, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.URL(name), nil
}

// Get returns the object body and its stored content type.
func (s *store) Get(ctx context.Context, name string) ([]byte, string, error) {
	const op = "blob.store.Get"

	res, err := s.objects.Get(ctx, name)
	if err != nil {
		if errors.Is(err, jetstream.ErrObjectNotFound) {
			return nil, "", fmt.Errorf("%s: %w", op, model.ErrPhotoNotFound)
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		return nil, "", fmt.Errorf("%s: read: %w", op, err)
	}

	contentType := defaultContentType
	if info, err := res.Info(); err == nil && info.Headers != nil {
		if ct := info.Headers.Get("Content-Type"); ct != "" {
			contentType = ct
		}
	}

	return data, contentType, nil
}

// Delete removes the object behind a URL returned by Put.
// Already missing objects are not an error.
func (s *store) Delete(ctx context.Context, url string) error {
	const op = "blob.store.Delete"

	name, ok := s.Name(url)
	if !ok {
		return errors.Join(model.ErrInvalidArgument, fmt.Errorf("%s: foreign url %q", op, url))
	}

	if err := s.objects.Delete(ctx, name); err != nil && !errors.Is(err, jetstream.ErrObjectNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *store) URL(name string) string {
	return s.baseURL + "/" + strings.TrimLeft(name, "/")
}

// Name maps a public URL back to its object name.
func (s *store) Name(url string) (string, bool) {
	name, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
