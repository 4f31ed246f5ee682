package main

import (
	"context"
	"flag"
	"os"

	trailerd "github.com/go-sdv/trailerd"
	providerv1 "github.com/go-sdv/trailerd/api/provider/v1"
	"github.com/go-sdv/trailerd/config"
	"github.com/go-sdv/trailerd/config/source/file"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/provider"
	"github.com/go-sdv/trailerd/registry"
	"github.com/go-sdv/trailerd/registry/chariott"
	"github.com/go-sdv/trailerd/registry/twin"
	"github.com/go-sdv/trailerd/transport/grpc"
)

var conf = flag.String("conf", "", "config file path (yaml)")

func main() {
	flag.Parse()
	cfg := load(*conf)

	l := logger.NewLog(logger.WithLevel(logger.ParseLevel(cfg.Log.Level)))
	logger.SetLogger(l)

	srv := grpc.NewServer(
		grpc.Network(cfg.Server.Network),
		grpc.Address(cfg.Server.Address),
		grpc.Logger(l),
	)
	providerv1.RegisterTrailerConnectedProviderServer(srv, provider.NewService(provider.Logger(l)))

	app := trailerd.NewApp(
		trailerd.Servers(srv),
		trailerd.Discoverer(chariott.New(chariott.Timeout(cfg.Timeout()), chariott.Logger(l))),
		trailerd.Registrar(twin.New(twin.Timeout(cfg.Timeout()), twin.Logger(l))),
		trailerd.Entities(func(uri string) []*registry.Entity {
			return []*registry.Entity{provider.Entity(uri)}
		}),
		trailerd.Broker(cfg.Discovery.BrokerURI),
		trailerd.Identity(cfg.Identity()),
		trailerd.Retries(cfg.Discovery.Retries, cfg.RetryDelay()),
		trailerd.Logger(l),
	)
	l.Log(context.Background(), logger.InfoLevel, map[string]interface{}{"address": cfg.Server.Address}, "provider starting")
	if err := app.Run(); err != nil {
		l.Log(context.Background(), logger.ErrorLevel, map[string]interface{}{"error": err.Error()}, "provider exited")
		os.Exit(1)
	}
	l.Log(context.Background(), logger.InfoLevel, nil, "provider stopped")
}

func load(path string) *trailerd.Config {
	cfg := trailerd.DefaultConfig()
	if len(path) == 0 {
		return cfg
	}
	c := config.New(config.WithSource(file.NewFile(path)))
	err := c.Load()
	if err == nil {
		err = c.Unmarshal(cfg)
	}
	if err != nil {
		logger.Log(context.Background(), logger.ErrorLevel, map[string]interface{}{"error": err, "path": path}, "load config")
		os.Exit(1)
	}
	return cfg
}
