package envconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

type blobEnv struct {
	NATSURL       string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	Bucket        string `env:"BLOB_BUCKET" envDefault:"part-photos"`
	PublicBaseURL string `env:"BLOB_PUBLIC_BASE_URL,required"`
	MaxPhotoBytes int64  `env:"BLOB_MAX_PHOTO_BYTES" envDefault:"10485760"`
}

type blob struct {
	raw blobEnv
}

func NewBlobConfig() (*blob, error) {
	var raw blobEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &blob{raw: raw}, nil
}

func (cfg *blob) NATSURL() string       { return cfg.raw.NATSURL }
func (cfg *blob) Bucket() string        { return cfg.raw.Bucket }
func (cfg *blob) PublicBaseURL() string { return strings.TrimRight(cfg.raw.PublicBaseURL, "/") }
func (cfg *blob) MaxPhotoBytes() int64  { return cfg.raw.MaxPhotoBytes }
