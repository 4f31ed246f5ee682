package transport

import (
	"context"

	_ "github.com/go-sdv/trailerd/encoding/json"
	_ "github.com/go-sdv/trailerd/encoding/toml"
	_ "github.com/go-sdv/trailerd/encoding/yaml"
)

const (
	GRPC = "grpc"
)

type Server interface {
	Start() error
	Stop(ctx context.Context) error
}
