package twin

import (
	"context"
	"net"
	"testing"
	"time"

	twinv1 "github.com/go-sdv/trailerd/api/twin/v1"
	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/registry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubRegistry struct {
	twinv1.UnimplementedInvehicleDigitalTwinServer
	err   error
	calls int
	got   *twinv1.RegisterRequest
}

func (s *stubRegistry) Register(ctx context.Context, req *twinv1.RegisterRequest) (*twinv1.RegisterResponse, error) {
	s.calls++
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &twinv1.RegisterResponse{}, nil
}

func serve(t *testing.T, reg *stubRegistry) *Client {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	twinv1.RegisterInvehicleDigitalTwinServer(srv, reg)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)
	return New(
		Timeout(time.Second),
		DialOption(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	)
}

func entities(n int) []*registry.Entity {
	out := make([]*registry.Entity, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &registry.Entity{
			Name:        "IsTrailerConnected",
			ID:          "dtmi:sdv:Trailer:IsTrailerConnected;1",
			Description: "trailer connection signal",
			Endpoints: []registry.Endpoint{{
				Protocol:   "grpc",
				Operations: []string{"Get"},
				URI:        "http://127.0.0.1:55000",
			}},
		})
	}
	return out
}

func TestRegisterBatchSingleCall(t *testing.T) {
	reg := &stubRegistry{}
	cli := serve(t, reg)
	if err := cli.Register(context.Background(), "bufnet", entities(3)); err != nil {
		t.Fatalf("register error: %+v", err)
	}
	if reg.calls != 1 {
		t.Fatalf("calls = %d, want 1", reg.calls)
	}
	if got := len(reg.got.GetEntityAccessInfoList()); got != 3 {
		t.Fatalf("entities in request = %d, want 3", got)
	}
	info := reg.got.GetEntityAccessInfoList()[0]
	if info.GetId() != "dtmi:sdv:Trailer:IsTrailerConnected;1" {
		t.Fatalf("entity id = %s", info.GetId())
	}
	eps := info.GetEndpointInfoList()
	if len(eps) != 1 || eps[0].GetProtocol() != "grpc" || eps[0].GetUri() != "http://127.0.0.1:55000" {
		t.Fatalf("endpoints = %+v", eps)
	}
}

func TestRegisterRejected(t *testing.T) {
	reg := &stubRegistry{err: status.Error(codes.Internal, "duplicate entity")}
	cli := serve(t, reg)
	err := cli.Register(context.Background(), "bufnet", entities(1))
	if errors.Reason(err) != errors.Registration {
		t.Fatalf("reason = %s, err = %+v", errors.Reason(err), err)
	}
}

func TestRegisterRegistryUnreachable(t *testing.T) {
	cli := New(Timeout(200 * time.Millisecond))
	err := cli.Register(context.Background(), "http://127.0.0.1:1", entities(1))
	if errors.Reason(err) != errors.Connection {
		t.Fatalf("reason = %s, err = %+v", errors.Reason(err), err)
	}
}
