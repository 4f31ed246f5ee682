package provider

import (
	"context"
	"strconv"

	providerv1 "github.com/go-sdv/trailerd/api/provider/v1"
	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/registry"
)

const (
	EntityID          = "dtmi:sdv:Trailer:IsTrailerConnected;1"
	EntityName        = "IsTrailerConnected"
	EntityDescription = "Indicates whether a trailer is connected to the vehicle"

	Protocol     = "grpc"
	OperationGet = "Get"
)

// ValueSource supplies the current trailer connectivity value. It is the
// seam to the physical signal; the default source reports a fixed value.
type ValueSource interface {
	GetValue() bool
}

type StaticSource bool

func (s StaticSource) GetValue() bool {
	return bool(s)
}

// Entity describes the is-trailer-connected capability as registered with
// the digital twin registry, reachable at uri.
func Entity(uri string) *registry.Entity {
	return &registry.Entity{
		ID:          EntityID,
		Name:        EntityName,
		Description: EntityDescription,
		Endpoints: []registry.Endpoint{
			{
				Protocol:   Protocol,
				Operations: []string{OperationGet},
				URI:        uri,
				Context:    EntityID,
			},
		},
	}
}

type Service struct {
	providerv1.UnimplementedTrailerConnectedProviderServer
	source ValueSource
	logger logger.Logger
}

type Option func(*Service)

func Source(source ValueSource) Option {
	return func(s *Service) {
		s.source = source
	}
}

func Logger(l logger.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		source: StaticSource(true),
		logger: logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Get(ctx context.Context, req *providerv1.GetRequest) (*providerv1.GetResponse, error) {
	if id := req.GetEntityId(); id != "" && id != EntityID {
		return nil, errors.NotFoundError("unknown entity " + id)
	}
	value := s.source.GetValue()
	s.logger.Log(ctx, logger.DebugLevel, map[string]interface{}{"value": value}, "get value")
	return &providerv1.GetResponse{
		PropertyValue: strconv.FormatBool(value),
	}, nil
}
