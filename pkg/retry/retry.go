package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

type Func func(int, *Option) time.Duration

type Option struct {
	retry     int
	backoff   int
	delay     time.Duration
	maxDelay  time.Duration
	maxJitter time.Duration
	f         Func
	ctx       context.Context
}

func NewOption(opts ...Opt) *Option {
	o := &Option{
		retry:     5,
		delay:     100 * time.Millisecond,
		maxJitter: 100 * time.Millisecond,
		f:         BackOff,
		ctx:       context.TODO(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Opt func(*Option)

func Retry(retry int) Opt {
	return func(o *Option) {
		if retry > 0 {
			o.retry = retry
		}
	}
}

func Delay(delay time.Duration) Opt {
	return func(o *Option) {
		o.delay = delay
	}
}

func MaxDelay(maxDelay time.Duration) Opt {
	return func(o *Option) {
		o.maxDelay = maxDelay
	}
}

func MaxJitter(maxJitter time.Duration) Opt {
	return func(o *Option) {
		o.maxJitter = maxJitter
	}
}

func Function(f Func) Opt {
	return func(o *Option) {
		o.f = f
	}
}

func Context(ctx context.Context) Opt {
	return func(o *Option) {
		o.ctx = ctx
	}
}

func BackOff(n int, o *Option) time.Duration {
	// 1 << 63 overflows time.Duration, thus 62
	max := 62
	if o.backoff == 0 {
		if o.delay <= 0 {
			o.delay = 1
		}
		o.backoff = max - int(math.Floor(math.Log2(float64(o.delay))))
	}
	if n > o.backoff {
		n = o.backoff
	}
	return o.delay << n
}

func Fixed(_ int, o *Option) time.Duration {
	return o.delay
}

func Random(_ int, o *Option) time.Duration {
	return time.Duration(rand.Int63n(int64(o.maxJitter)))
}

func Group(fs ...Func) Func {
	return func(n int, o *Option) time.Duration {
		var total time.Duration
		for _, f := range fs {
			total += f(n, o)
		}
		return total
	}
}

func (o *Option) Retry(fn func() error) error {
	var err error
	for n := 1; n <= o.retry; n++ {
		err = fn()
		if err == nil {
			break
		}
		if n == o.retry {
			break
		}
		t := time.NewTimer(delay(o, n))
		select {
		case <-o.ctx.Done():
			t.Stop()
			return o.ctx.Err()
		case <-t.C:
		}
	}
	return err
}

func delay(o *Option, n int) time.Duration {
	d := o.f(n, o)
	if o.maxDelay > 0 && d > o.maxDelay {
		d = o.maxDelay
	}
	return d
}
