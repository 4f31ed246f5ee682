package grpc

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"
	"time"

	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/middleware"
	"github.com/go-sdv/trailerd/middleware/logging"
	"github.com/go-sdv/trailerd/middleware/recovery"
	"github.com/go-sdv/trailerd/pkg/endpoint"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	*grpc.Server
	health   *health.Server
	listener net.Listener
	tls      *tls.Config
	err      error
	logger   logger.Logger
	network  string
	address  string
	mws      []middleware.Middleware
	opts     []grpc.ServerOption
	unary    []grpc.UnaryServerInterceptor
}

func NewServer(opts ...ServerOption) *Server {
	srv := &Server{
		network: "tcp",
		address: "0.0.0.0:9090",
		health:  health.NewServer(),
		logger:  logger.GetLogger(),
		opts:    ServerOpts(),
	}
	for _, o := range opts {
		o(srv)
	}
	if srv.mws == nil {
		srv.mws = []middleware.Middleware{
			ServerRequestID(),
			logging.Log(srv.logger),
			recovery.Recovery(srv.logger),
		}
	}
	grpcOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(append(srv.unary, srv.unaryServerInterceptor())...),
	}
	if srv.tls != nil {
		grpcOpts = append(grpcOpts, grpc.Creds(credentials.NewTLS(srv.tls)))
	}
	if len(srv.opts) > 0 {
		grpcOpts = append(grpcOpts, srv.opts...)
	}

	srv.Server = grpc.NewServer(grpcOpts...)
	if srv.listener == nil {
		srv.err = srv.listen()
	}
	grpc_health_v1.RegisterHealthServer(srv.Server, srv.health)
	reflection.Register(srv.Server)
	return srv
}

func (s *Server) Start() error {
	if s.err != nil {
		return s.err
	}
	s.health.Resume()
	return s.Serve(s.listener)
}

func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	s.GracefulStop()
	return nil
}

func (s *Server) listen() error {
	l, err := net.Listen(s.network, s.address)
	if err != nil {
		return err
	}
	s.listener = l
	return nil
}

// Endpoint reports the externally reachable URI of the bound listener.
func (s *Server) Endpoint() (*url.URL, error) {
	if s.err != nil {
		return nil, s.err
	}
	host, err := endpoint.ParseAddr(s.listener, s.address)
	if err != nil {
		return nil, err
	}
	u := &url.URL{
		Scheme: endpoint.Scheme("http", s.tls == nil),
		Host:   host,
	}
	return u, nil
}

type ServerOption func(*Server)

func Network(network string) ServerOption {
	return func(s *Server) {
		s.network = network
	}
}

func Address(addr string) ServerOption {
	return func(s *Server) {
		s.address = addr
	}
}

func Listener(l net.Listener) ServerOption {
	return func(s *Server) {
		s.listener = l
	}
}

func TLS(tls *tls.Config) ServerOption {
	return func(s *Server) {
		s.tls = tls
	}
}

func Logger(logger logger.Logger) ServerOption {
	return func(server *Server) {
		server.logger = logger
	}
}

func UnaryInterceptor(u []grpc.UnaryServerInterceptor) ServerOption {
	return func(s *Server) {
		s.unary = u
	}
}

func ServerOptions(opts []grpc.ServerOption) ServerOption {
	return func(s *Server) {
		s.opts = opts
	}
}

func Middleware(mws []middleware.Middleware) ServerOption {
	return func(server *Server) {
		server.mws = mws
	}
}

type serverOpt struct {
	maxConnectionIdle     time.Duration
	maxConnectionAge      time.Duration
	maxConnectionAgeGrace time.Duration
	time                  time.Duration
	timeout               time.Duration
	minTime               time.Duration
	permitWithoutStream   bool
}

type ServerOpt func(option *serverOpt)

func MaxConnectionIdle(idle time.Duration) ServerOpt {
	return func(option *serverOpt) {
		option.maxConnectionIdle = idle
	}
}

func MaxConnectionAge(age time.Duration) ServerOpt {
	return func(option *serverOpt) {
		option.maxConnectionAge = age
	}
}

func AliveTime(tm time.Duration) ServerOpt {
	return func(option *serverOpt) {
		option.time = tm
	}
}

func AliveTimeout(tm time.Duration) ServerOpt {
	return func(option *serverOpt) {
		option.timeout = tm
	}
}

func ServerOpts(opts ...ServerOpt) []grpc.ServerOption {
	o := &serverOpt{
		maxConnectionIdle:     5 * time.Minute,
		maxConnectionAge:      0,
		maxConnectionAgeGrace: 5 * time.Second,
		time:                  2 * time.Minute,
		timeout:               2 * time.Second,
		minTime:               5 * time.Second,
		permitWithoutStream:   true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return []grpc.ServerOption{
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     o.maxConnectionIdle,
			MaxConnectionAge:      o.maxConnectionAge,
			MaxConnectionAgeGrace: o.maxConnectionAgeGrace,
			Time:                  o.time,
			Timeout:               o.timeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             o.minTime,
			PermitWithoutStream: o.permitWithoutStream,
		}),
	}
}
