package routine

import (
	"context"
	"testing"
	"time"
)

func TestGoSafeRecovers(t *testing.T) {
	done := make(chan struct{})
	GoSafe(context.TODO(), func() {
		defer close(done)
		panic("boom")
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}
