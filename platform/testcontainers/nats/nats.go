// Package nats starts a disposable JetStream-enabled NATS server.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/you-humble/partsyard/platform/logger"
	tc "github.com/you-humble/partsyard/platform/testcontainers"
)

const (
	clientPort     = "4222/tcp"
	startupTimeout = 30 * time.Second
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Option func(*config)

type config struct {
	image   string
	network string
	logger  Logger
}

func WithImageName(image string) Option {
	return func(c *config) {
		if image != "" {
			c.image = image
		}
	}
}

func WithNetworkName(network string) Option {
	return func(c *config) { c.network = network }
}

func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

type Container struct {
	container testcontainers.Container
	conn      *nats.Conn
	url       string
	logger    Logger
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &config{image: tc.DefaultNATSImage, logger: logger.NoopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		Cmd:          []string{"-js"},
		ExposedPorts: []string{clientPort},
		WaitingFor: wait.ForAll(
			wait.ForLog("Server is ready"),
			wait.ForListeningPort(clientPort),
		).WithStartupTimeout(startupTimeout),
	}
	if cfg.network != "" {
		req.Networks = []string{cfg.network}
		req.NetworkAliases = map[string][]string{cfg.network: {"nats"}}
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start nats container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Wrap(err, "container host")
	}
	mapped, err := c.MappedPort(ctx, clientPort)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Wrap(err, "mapped port")
	}

	url := fmt.Sprintf("nats://%s:%s", host, mapped.Port())
	conn, err := nats.Connect(url)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Wrap(err, "connect to nats")
	}

	cfg.logger.Info(ctx, "nats container started", logger.String("url", url))

	return &Container{container: c, conn: conn, url: url, logger: cfg.logger}, nil
}

func (c *Container) Conn() *nats.Conn { return c.conn }
func (c *Container) URL() string      { return c.url }

func (c *Container) Terminate(ctx context.Context) error {
	c.conn.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.logger.Error(ctx, "failed to terminate nats container", logger.ErrorF(err))
		return err
	}
	return nil
}
