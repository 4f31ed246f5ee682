package grpc

import (
	"context"
	"strings"

	"github.com/go-sdv/trailerd/middleware"
	utils "github.com/go-sdv/trailerd/pkg"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func (s *Server) unaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if strings.HasPrefix(info.FullMethod, "/") {
			pos := strings.LastIndex(info.FullMethod[1:], "/")
			if pos >= 0 {
				ctx = context.WithValue(ctx, utils.Method, info.FullMethod[1:][pos+1:])
				ctx = context.WithValue(ctx, utils.Path, info.FullMethod[1:][:pos])
			}
		}
		return middleware.ComposeMiddleware(s.mws...)(func(ctx context.Context, req interface{}) (interface{}, error) {
			return handler(ctx, req)
		})(ctx, req)
	}
}

func ServerRequestID() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			md, ok := metadata.FromIncomingContext(ctx)
			if !ok {
				md = metadata.Pairs()
			}
			requestID := md[utils.TraceID]
			if len(requestID) > 0 {
				ctx = context.WithValue(ctx, utils.TraceID, requestID[0])
			} else {
				ctx = context.WithValue(ctx, utils.TraceID, utils.BuildRequestID())
			}
			return handler(ctx, req)
		}
	}
}
