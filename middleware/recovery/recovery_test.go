package recovery

import (
	"context"
	"testing"

	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/middleware"
)

func TestRecoveryConvertsPanic(t *testing.T) {
	handler := Recovery(logger.GetLogger())(func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	_, err := handler(context.Background(), nil)
	if errors.Reason(err) != errors.Panic {
		t.Fatalf("reason = %s, err = %+v", errors.Reason(err), err)
	}
}

func TestRecoveryPassesThrough(t *testing.T) {
	var handler middleware.Handler = func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}
	rsp, err := Recovery(logger.GetLogger())(handler)(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if rsp != "ok" {
		t.Fatalf("rsp = %v", rsp)
	}
}
