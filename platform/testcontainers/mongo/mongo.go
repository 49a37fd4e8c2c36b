// Package mongo starts a disposable MongoDB container for integration suites.
package mongo

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/partsyard/platform/logger"
)

const (
	port           = "27017/tcp"
	startupTimeout = time.Minute

	envUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	envPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
)

type Container struct {
	container testcontainers.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	c, err := start(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ok := false
	defer func() {
		if ok {
			return
		}
		if terr := c.Terminate(ctx); terr != nil {
			cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(terr))
		}
	}()

	if cfg.Host, cfg.Port, err = hostPort(ctx, c); err != nil {
		return nil, err
	}

	client, err := connect(ctx, cfg.URI())
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "mongo container started",
		logger.String("host", cfg.Host),
		logger.String("port", cfg.Port),
	)
	ok = true

	return &Container{container: c, client: client, cfg: cfg}, nil
}

func (c *Container) Client() *mongo.Client { return c.client }
func (c *Container) Config() *Config       { return c.cfg }

func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", logger.ErrorF(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		return err
	}

	c.cfg.Logger.Info(ctx, "mongo container terminated")
	return nil
}
