package mongo

import (
	"context"

	"github.com/you-humble/partsyard/platform/logger"
	tc "github.com/you-humble/partsyard/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: tc.DefaultMongoImage,
		Database:  "partsyard-test",
		Username:  "root",
		Password:  "root",
		AuthDB:    "admin",
		Logger:    logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
