package grpc

import (
	"context"
	"time"

	utils "github.com/go-sdv/trailerd/pkg"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func UnaryClientTimeout(defaultTime time.Duration) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		var cancel context.CancelFunc
		if _, ok := ctx.Deadline(); !ok {
			ctx, cancel = context.WithTimeout(ctx, defaultTime)
		}
		if cancel != nil {
			defer cancel()
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func UnaryClientRequestID() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		requestID, ok := ctx.Value(utils.TraceID).(string)
		if !ok || len(requestID) == 0 {
			requestID = utils.BuildRequestID()
		}
		ctx = metadata.AppendToOutgoingContext(ctx, utils.TraceID, requestID)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
