package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is a bridge network shared by the containers of one suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

func New(ctx context.Context, project string) (*Network, error) {
	n, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver("bridge"),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{"project": project}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create docker network")
	}

	return &Network{network: n}, nil
}

func (n *Network) Name() string { return n.network.Name }

func (n *Network) Remove(ctx context.Context) error {
	return n.network.Remove(ctx)
}
