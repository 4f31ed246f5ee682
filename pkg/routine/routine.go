package routine

import (
	"context"
	"fmt"

	"github.com/go-sdv/trailerd/logger"
)

func GoSafe(ctx context.Context, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log(ctx, logger.ErrorLevel, map[string]interface{}{"error": fmt.Sprintf("%+v", r)}, "routine recover")
			}
		}()
		fn()
	}()
}
