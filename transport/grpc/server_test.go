package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestServerBindsBeforeStart(t *testing.T) {
	srv := NewServer(Address("127.0.0.1:0"))
	u, err := srv.Endpoint()
	if err != nil {
		t.Fatalf("endpoint: %+v", err)
	}
	if u.Scheme != "http" || u.Port() == "0" || u.Port() == "" {
		t.Fatalf("endpoint = %s", u)
	}
	_ = srv.Stop(context.Background())
}

func TestServerServesHealth(t *testing.T) {
	srv := NewServer(Address("127.0.0.1:0"))
	go func() {
		_ = srv.Start()
	}()
	defer srv.Stop(context.Background())

	u, err := srv.Endpoint()
	if err != nil {
		t.Fatalf("endpoint: %+v", err)
	}
	cli := NewClient(WithAddr(u.Host), WithTimeout(2*time.Second))
	if cli.Err() != nil {
		t.Fatalf("dial: %+v", cli.Err())
	}
	defer cli.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rsp, err := grpc_health_v1.NewHealthClient(cli.ClientConn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health check: %+v", err)
	}
	if rsp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Fatalf("status = %s", rsp.GetStatus())
	}
}

func TestServerAddressInUse(t *testing.T) {
	first := NewServer(Address("127.0.0.1:0"))
	defer first.Stop(context.Background())
	u, err := first.Endpoint()
	if err != nil {
		t.Fatalf("endpoint: %+v", err)
	}
	second := NewServer(Address(u.Host))
	if err := second.Start(); err == nil {
		second.Stop(context.Background())
		t.Fatal("expected bind error for occupied address")
	}
}
