package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/middleware"
	utils "github.com/go-sdv/trailerd/pkg"
)

func Log(l logger.Logger) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			operation, _ := ctx.Value(utils.Method).(string)
			start := time.Now()
			rsp, err := handler(ctx, req)
			fields := map[string]interface{}{
				"operation": operation,
				"latency":   time.Since(start).Milliseconds(),
			}
			var level uint
			if err != nil {
				fields["error"] = fmt.Sprintf("%+v", err)
				level = logger.ErrorLevel
			} else {
				level = logger.DebugLevel
			}
			l.Log(ctx, level, fields, "access log")
			return rsp, err
		}
	}
}
