package chariott

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	chariottv1 "github.com/go-sdv/trailerd/api/chariott/v1"
	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/registry"
	"github.com/go-sdv/trailerd/transport/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcx "google.golang.org/grpc"
)

// Client resolves service identities through a Chariott style discovery
// broker. Every Discover call opens a fresh connection and performs one
// lookup; results are never cached.
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

func (c *Client) Discover(ctx context.Context, brokerURI string, id registry.ServiceIdentity) (*registry.RemoteService, error) {
	cli := grpc.NewClient(
		grpc.WithAddr(Target(brokerURI)),
		grpc.WithTimeout(c.opt.timeout),
		grpc.WithUnaryInterceptor([]grpcx.UnaryClientInterceptor{
			grpc.UnaryClientTimeout(c.opt.timeout),
			grpc.UnaryClientRequestID(),
		}),
		grpc.ClientOptions(c.opt.dialOpts),
	)
	if cli.Err() != nil {
		return nil, errors.ConnectionError(fmt.Sprintf("connect discovery broker %s", brokerURI)).WithError(cli.Err())
	}
	defer cli.Stop()

	rsp, err := chariottv1.NewServiceRegistryClient(cli.ClientConn).Discover(ctx, &chariottv1.DiscoverRequest{
		Namespace: id.Namespace,
		Name:      id.Name,
		Version:   id.Version,
	})
	if err != nil {
		return nil, discoverError(brokerURI, id, err)
	}
	svc := rsp.GetService()
	if svc == nil {
		return nil, errors.NotFoundError(fmt.Sprintf("no service %s/%s@%s published", id.Namespace, id.Name, id.Version))
	}
	// both tags must match, a single incompatible tag rejects the endpoint
	if svc.GetCommunicationKind() != id.CommunicationKind || svc.GetCommunicationReference() != id.CommunicationReference {
		c.opt.logger.Log(ctx, logger.WarnLevel, map[string]interface{}{
			"namespace":      id.Namespace,
			"name":           id.Name,
			"version":        id.Version,
			"want_kind":      id.CommunicationKind,
			"got_kind":       svc.GetCommunicationKind(),
			"want_reference": id.CommunicationReference,
			"got_reference":  svc.GetCommunicationReference(),
		}, "discovered service transport mismatch")
		return nil, errors.MismatchError(fmt.Sprintf("service %s/%s@%s speaks %q (%s), want %q (%s)",
			id.Namespace, id.Name, id.Version,
			svc.GetCommunicationKind(), svc.GetCommunicationReference(),
			id.CommunicationKind, id.CommunicationReference))
	}
	return &registry.RemoteService{
		URI:                    svc.GetUri(),
		CommunicationKind:      svc.GetCommunicationKind(),
		CommunicationReference: svc.GetCommunicationReference(),
	}, nil
}

func discoverError(brokerURI string, id registry.ServiceIdentity, err error) error {
	s, ok := status.FromError(err)
	if ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded:
			return errors.ConnectionError(fmt.Sprintf("discovery broker %s unreachable", brokerURI)).WithError(err)
		case codes.NotFound:
			return errors.NotFoundError(fmt.Sprintf("no service %s/%s@%s published", id.Namespace, id.Name, id.Version)).WithError(err)
		}
	}
	return errors.LookupError(fmt.Sprintf("discover %s/%s@%s", id.Namespace, id.Name, id.Version)).WithError(err)
}

// Target strips the URI scheme, grpc dial targets are host:port.
func Target(uri string) string {
	if !strings.Contains(uri, "://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return u.Host
}
