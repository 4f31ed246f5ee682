package trailerd

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/pkg/retry"
	"github.com/go-sdv/trailerd/registry"
	"github.com/go-sdv/trailerd/transport"
	"golang.org/x/sync/errgroup"
)

// Endpointer is implemented by servers that know their externally
// reachable URI once their listener is bound.
type Endpointer interface {
	Endpoint() (*url.URL, error)
}

// App drives the provider through its bootstrap sequence: bind and serve,
// discover the digital twin registry through the broker, publish the local
// entities to it, then stay Ready until a shutdown signal. Any discovery
// or registration failure is fatal.
type App struct {
	servers     []transport.Server
	discoverer  registry.Discoverer
	registrar   registry.Registrar
	entities    func(providerURI string) []*registry.Entity
	brokerURI   string
	identity    registry.ServiceIdentity
	retries     int
	retryDelay  time.Duration
	stopTimeout time.Duration
	signals     []os.Signal
	logger      logger.Logger
	state       int32
	observer    func(State)
}

type AppOption func(*App)

func Servers(srv ...transport.Server) AppOption {
	return func(a *App) {
		a.servers = srv
	}
}

func Discoverer(d registry.Discoverer) AppOption {
	return func(a *App) {
		a.discoverer = d
	}
}

func Registrar(r registry.Registrar) AppOption {
	return func(a *App) {
		a.registrar = r
	}
}

func Entities(fn func(providerURI string) []*registry.Entity) AppOption {
	return func(a *App) {
		a.entities = fn
	}
}

func Broker(uri string) AppOption {
	return func(a *App) {
		a.brokerURI = uri
	}
}

func Identity(id registry.ServiceIdentity) AppOption {
	return func(a *App) {
		a.identity = id
	}
}

// Retries allows bounded retry with backoff around discovery and
// registration. Zero keeps the fail-fast default.
func Retries(retries int, delay time.Duration) AppOption {
	return func(a *App) {
		a.retries = retries
		a.retryDelay = delay
	}
}

func StopTimeout(tm time.Duration) AppOption {
	return func(a *App) {
		a.stopTimeout = tm
	}
}

func Logger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// Observer is notified on every state transition.
func Observer(fn func(State)) AppOption {
	return func(a *App) {
		a.observer = fn
	}
}

func NewApp(opts ...AppOption) *App {
	a := &App{
		retryDelay:  500 * time.Millisecond,
		stopTimeout: 3 * time.Second,
		signals:     []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT},
		logger:      logger.GetLogger(),
		state:       int32(Idle),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) State() State {
	return State(atomic.LoadInt32(&a.state))
}

func (a *App) setState(s State) {
	atomic.StoreInt32(&a.state, int32(s))
	if a.observer != nil {
		a.observer(s)
	}
}

// Run blocks until shutdown. The listeners are bound at server
// construction, so requests queue at the transport while discovery and
// registration are still in flight; the provider only counts as Ready
// once the registry routes to it.
func (a *App) Run() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, a.signals...)
	defer signal.Stop(sig)

	eg, ctx := errgroup.WithContext(context.Background())
	stop := make(chan struct{})
	a.setState(Listening)
	for _, server := range a.servers {
		s := server
		eg.Go(func() error {
			return s.Start()
		})
		eg.Go(func() error {
			<-stop
			cx, cancel := context.WithTimeout(context.Background(), a.stopTimeout)
			defer cancel()
			return s.Stop(cx)
		})
	}
	eg.Go(func() error {
		return a.bootstrap(ctx)
	})

	select {
	case s := <-sig:
		a.logger.Log(ctx, logger.InfoLevel, map[string]interface{}{"signal": s.String()}, "shutdown signal")
	case <-ctx.Done():
	}
	close(stop)
	return eg.Wait()
}

func (a *App) bootstrap(ctx context.Context) error {
	fields := map[string]interface{}{
		"namespace": a.identity.Namespace,
		"name":      a.identity.Name,
		"version":   a.identity.Version,
		"broker":    a.brokerURI,
	}
	a.setState(Discovering)
	a.logger.Log(ctx, logger.InfoLevel, fields, "discovering registry")
	var svc *registry.RemoteService
	err := a.attempt(ctx, func() error {
		var derr error
		svc, derr = a.discoverer.Discover(ctx, a.brokerURI, a.identity)
		return derr
	})
	if err != nil {
		return a.fail(ctx, fields, err)
	}
	a.setState(Discovered)

	a.setState(Registering)
	uri, err := a.providerURI()
	if err != nil {
		return a.fail(ctx, fields, err)
	}
	a.logger.Log(ctx, logger.InfoLevel, map[string]interface{}{"registry": svc.URI, "provider": uri}, "registering entities")
	err = a.attempt(ctx, func() error {
		return a.registrar.Register(ctx, svc.URI, a.entities(uri))
	})
	if err != nil {
		return a.fail(ctx, fields, err)
	}
	a.setState(Ready)
	a.logger.Log(ctx, logger.InfoLevel, map[string]interface{}{"provider": uri}, "provider ready")
	return nil
}

func (a *App) attempt(ctx context.Context, fn func() error) error {
	if a.retries <= 0 {
		return fn()
	}
	return retry.NewOption(
		retry.Retry(a.retries+1),
		retry.Delay(a.retryDelay),
		retry.Context(ctx),
	).Retry(fn)
}

func (a *App) fail(ctx context.Context, fields map[string]interface{}, err error) error {
	a.setState(Failed)
	fields["error"] = errors.FromError(err).Error()
	a.logger.Log(ctx, logger.ErrorLevel, fields, "bootstrap failed")
	return err
}

func (a *App) providerURI() (string, error) {
	for _, server := range a.servers {
		e, ok := server.(Endpointer)
		if !ok {
			continue
		}
		u, err := e.Endpoint()
		if err != nil {
			return "", err
		}
		return u.String(), nil
	}
	return "", errors.InternalServer(errors.UnknownReason, "no server exposes an endpoint")
}
