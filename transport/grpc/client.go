package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

type Client struct {
	*grpc.ClientConn
	err     error
	address string
	timeout time.Duration
	opts    []grpc.DialOption
	unary   []grpc.UnaryClientInterceptor
}

func NewClient(opts ...ClientOption) *Client {
	cli := &Client{
		address: "0.0.0.0:0",
	}
	for _, o := range opts {
		o(cli)
	}

	ctx := context.Background()
	if cli.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.timeout)
		defer cancel()
	}

	grpcOpts := DialOpts()
	if len(cli.unary) > 0 {
		grpcOpts = append(grpcOpts, grpc.WithChainUnaryInterceptor(cli.unary...))
	}
	if len(cli.opts) > 0 {
		grpcOpts = append(grpcOpts, cli.opts...)
	}

	conn, err := grpc.DialContext(ctx, cli.address, grpcOpts...)
	cli.err = err
	cli.ClientConn = conn
	return cli
}

func (c *Client) Err() error {
	return c.err
}

func (c *Client) Stop() error {
	if c.ClientConn == nil {
		return nil
	}
	return c.Close()
}

type ClientOption func(*Client)

func ClientOptions(opts []grpc.DialOption) ClientOption {
	return func(client *Client) {
		client.opts = opts
	}
}

func WithAddr(addr string) ClientOption {
	return func(client *Client) {
		client.address = addr
	}
}

func WithTimeout(tm time.Duration) ClientOption {
	return func(client *Client) {
		client.timeout = tm
	}
}

func WithUnaryInterceptor(unary []grpc.UnaryClientInterceptor) ClientOption {
	return func(client *Client) {
		client.unary = unary
	}
}

func DialOpts() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             time.Second,
			PermitWithoutStream: true,
		}),
	}
}
