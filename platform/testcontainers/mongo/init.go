package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func request(cfg *Config) testcontainers.ContainerRequest {
	req := testcontainers.ContainerRequest{
		Name:  cfg.ContainerName,
		Image: cfg.ImageName,
		Env: map[string]string{
			envUsernameKey:          cfg.Username,
			envPasswordKey:          cfg.Password,
			"MONGO_INITDB_DATABASE": cfg.Database,
		},
		ExposedPorts: []string{port},
		WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(startupTimeout),
	}

	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{cfg.NetworkName: {"mongo"}}
	}

	return req
}

func start(ctx context.Context, cfg *Config) (testcontainers.Container, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request(cfg),
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	return c, nil
}

func hostPort(ctx context.Context, c testcontainers.Container) (string, string, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", errors.Wrap(err, "container host")
	}

	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return "", "", errors.Wrap(err, "mapped port")
	}

	return host, mapped.Port(), nil
}
