package twin

import (
	"context"
	"fmt"
	"time"

	twinv1 "github.com/go-sdv/trailerd/api/twin/v1"
	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/registry"
	"github.com/go-sdv/trailerd/registry/chariott"
	"github.com/go-sdv/trailerd/transport/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcx "google.golang.org/grpc"
)

// Client publishes entity descriptors to the in-vehicle digital twin
// registry. The whole batch goes out in a single Register call; the
// registry owns the resulting routing entries (no lease, no renewal).
type Client struct {
	opt *option
}

type option struct {
	timeout  time.Duration
	logger   logger.Logger
	dialOpts []grpcx.DialOption
}

type Option func(*option)

func Timeout(tm time.Duration) Option {
	return func(o *option) {
		o.timeout = tm
	}
}

func Logger(l logger.Logger) Option {
	return func(o *option) {
		o.logger = l
	}
}

func DialOption(opts ...grpcx.DialOption) Option {
	return func(o *option) {
		o.dialOpts = append(o.dialOpts, opts...)
	}
}

func New(opts ...Option) *Client {
	opt := &option{
		timeout: 5 * time.Second,
		logger:  logger.GetLogger(),
	}
	for _, o := range opts {
		o(opt)
	}
	return &Client{opt: opt}
}

func (c *Client) Register(ctx context.Context, registryURI string, entities []*registry.Entity) error {
	cli := grpc.NewClient(
		grpc.WithAddr(chariott.Target(registryURI)),
		grpc.WithTimeout(c.opt.timeout),
		grpc.WithUnaryInterceptor([]grpcx.UnaryClientInterceptor{
			grpc.UnaryClientTimeout(c.opt.timeout),
			grpc.UnaryClientRequestID(),
		}),
		grpc.ClientOptions(c.opt.dialOpts),
	)
	if cli.Err() != nil {
		return errors.ConnectionError(fmt.Sprintf("connect registry %s", registryURI)).WithError(cli.Err())
	}
	defer cli.Stop()

	req := &twinv1.RegisterRequest{
		EntityAccessInfoList: make([]*twinv1.EntityAccessInfo, 0, len(entities)),
	}
	for _, entity := range entities {
		info := &twinv1.EntityAccessInfo{
			Name:             entity.Name,
			Id:               entity.ID,
			Description:      entity.Description,
			EndpointInfoList: make([]*twinv1.EndpointInfo, 0, len(entity.Endpoints)),
		}
		for _, ep := range entity.Endpoints {
			info.EndpointInfoList = append(info.EndpointInfoList, &twinv1.EndpointInfo{
				Protocol:   ep.Protocol,
				Operations: ep.Operations,
				Uri:        ep.URI,
				Context:    ep.Context,
			})
		}
		req.EntityAccessInfoList = append(req.EntityAccessInfoList, info)
	}

	_, err := twinv1.NewInvehicleDigitalTwinClient(cli.ClientConn).Register(ctx, req)
	if err != nil {
		s, ok := status.FromError(err)
		if ok && (s.Code() == codes.Unavailable || s.Code() == codes.DeadlineExceeded) {
			return errors.ConnectionError(fmt.Sprintf("registry %s unreachable", registryURI)).WithError(err)
		}
		return errors.RegistrationError(fmt.Sprintf("registry %s rejected %d entities", registryURI, len(entities))).WithError(err)
	}
	c.opt.logger.Log(ctx, logger.InfoLevel, map[string]interface{}{
		"registry": registryURI,
		"entities": len(entities),
	}, "entities registered")
	return nil
}
