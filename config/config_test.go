package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sdv/trailerd/config/source/env"
	"github.com/go-sdv/trailerd/config/source/file"
	"github.com/google/go-cmp/cmp"
)

type serverConf struct {
	Network string `json:"network" yaml:"network"`
	Address string `json:"address" yaml:"address"`
}

type testConf struct {
	Server serverConf `json:"server" yaml:"server"`
	Level  string     `json:"level" yaml:"level"`
}

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %s", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConf(t, "server:\n  network: tcp\n  address: 0.0.0.0:55000\nlevel: debug\n")
	c := New(WithSource(file.NewFile(path)))
	defer c.Close()
	if err := c.Load(); err != nil {
		t.Fatalf("load: %+v", err)
	}
	var conf testConf
	if err := c.Unmarshal(&conf); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	want := testConf{Server: serverConf{Network: "tcp", Address: "0.0.0.0:55000"}, Level: "debug"}
	if diff := cmp.Diff(want, conf); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestUnmarshalSubtree(t *testing.T) {
	path := writeConf(t, "server:\n  network: tcp\n  address: 127.0.0.1:0\n")
	c := New(WithSource(file.NewFile(path)))
	defer c.Close()
	if err := c.Load(); err != nil {
		t.Fatalf("load: %+v", err)
	}
	var srv serverConf
	if err := c.Unmarshal(&srv, "server"); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	if srv.Address != "127.0.0.1:0" {
		t.Fatalf("address = %s", srv.Address)
	}
	if err := c.Unmarshal(&srv, "missing"); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestOnChange(t *testing.T) {
	path := writeConf(t, "level: info\n")
	c := New(WithSource(file.NewFile(path)))
	defer c.Close()
	if err := c.Load(); err != nil {
		t.Fatalf("load: %+v", err)
	}
	changed := make(chan struct{}, 1)
	c.OnChange(func(*Config) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := os.WriteFile(path, []byte("level: warn\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %s", err)
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}
	var level string
	if err := c.Unmarshal(&level, "level"); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	if level != "warn" {
		t.Fatalf("level = %s", level)
	}
}

func TestEnvSource(t *testing.T) {
	t.Setenv("trailerd_level", "trace")
	t.Setenv("trailerd_address", "127.0.0.1:55001")
	c := New(WithSource(env.New()))
	if err := c.Load(); err != nil {
		t.Fatalf("load: %+v", err)
	}
	var level string
	if err := c.Unmarshal(&level, "level"); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	if level != "trace" {
		t.Fatalf("level = %s", level)
	}
}
