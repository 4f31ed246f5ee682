package recovery

import (
	"context"
	"fmt"

	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/middleware"
)

func Recovery(l logger.Logger) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (rsp interface{}, err error) {
			defer func() {
				if e := recover(); e != nil {
					v, ok := e.(error)
					if ok && errors.HasStack(v) {
						err = v
					} else {
						err = errors.New(errors.PanicCode, errors.Panic, fmt.Sprintf("%+v", e))
					}
					fields := map[string]interface{}{
						"req":   fmt.Sprintf("%+v", req),
						"error": fmt.Sprintf("%+v", err),
					}
					l.Log(ctx, logger.ErrorLevel, fields, "recover")
					err = errors.InternalServer(errors.Panic, errors.Panic)
				}
			}()
			rsp, err = handler(ctx, req)
			return rsp, err
		}
	}
}
