package provider

import (
	"context"
	"testing"

	providerv1 "github.com/go-sdv/trailerd/api/provider/v1"
	"github.com/go-sdv/trailerd/errors"
	"github.com/google/go-cmp/cmp"
)

func TestGetReturnsSourceValue(t *testing.T) {
	tests := []struct {
		name  string
		value bool
		want  string
	}{
		{"connected", true, "true"},
		{"disconnected", false, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(Source(StaticSource(tt.value)))
			rsp, err := svc.Get(context.Background(), &providerv1.GetRequest{EntityId: EntityID})
			if err != nil {
				t.Fatalf("get error: %+v", err)
			}
			if rsp.GetPropertyValue() != tt.want {
				t.Fatalf("value = %s, want %s", rsp.GetPropertyValue(), tt.want)
			}
		})
	}
}

func TestGetEmptyEntityID(t *testing.T) {
	svc := NewService()
	rsp, err := svc.Get(context.Background(), &providerv1.GetRequest{})
	if err != nil {
		t.Fatalf("get error: %+v", err)
	}
	if rsp.GetPropertyValue() != "true" {
		t.Fatalf("value = %s", rsp.GetPropertyValue())
	}
}

func TestGetUnknownEntity(t *testing.T) {
	svc := NewService()
	_, err := svc.Get(context.Background(), &providerv1.GetRequest{EntityId: "dtmi:sdv:Trailer:Weight;1"})
	if errors.Reason(err) != errors.ServiceNotFound {
		t.Fatalf("reason = %s, err = %+v", errors.Reason(err), err)
	}
}

func TestEntityDescriptor(t *testing.T) {
	got := Entity("http://127.0.0.1:55000")
	if got.ID != EntityID || got.Name != EntityName {
		t.Fatalf("entity = %+v", got)
	}
	if len(got.Endpoints) != 1 {
		t.Fatalf("endpoints = %d", len(got.Endpoints))
	}
	ep := got.Endpoints[0]
	if diff := cmp.Diff([]string{OperationGet}, ep.Operations); diff != "" {
		t.Fatalf("operations (-want +got):\n%s", diff)
	}
	if ep.Protocol != Protocol || ep.URI != "http://127.0.0.1:55000" {
		t.Fatalf("endpoint = %+v", ep)
	}
}
