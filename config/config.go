package config

import (
	"context"
	"strings"
	"sync"

	"github.com/go-sdv/trailerd/config/source/file"
	"github.com/go-sdv/trailerd/encoding"
	"github.com/go-sdv/trailerd/errors"
	"github.com/go-sdv/trailerd/pkg/routine"
)

type Config struct {
	l         sync.RWMutex
	data      map[string]any
	delimiter string
	src       Source
	changes   []func(*Config)
}

type Option func(*Config)

func WithSource(src Source) Option {
	return func(c *Config) {
		c.src = src
	}
}

func New(opts ...Option) *Config {
	c := &Config{
		data:      make(map[string]any),
		delimiter: ".",
		src:       file.NewFile("config.yaml"),
		changes:   make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) Load() error {
	err := c.load()
	if err != nil {
		return err
	}
	routine.GoSafe(context.TODO(), func() {
		for range c.src.Watch() {
			if c.load() != nil {
				continue
			}
			c.l.RLock()
			changes := c.changes
			c.l.RUnlock()
			for _, change := range changes {
				change(c)
			}
		}
	})
	return nil
}

func (c *Config) load() error {
	raw, err := c.src.Load()
	if err != nil {
		return err
	}
	codec := encoding.GetCodec(c.src.Format())
	if codec == nil {
		return errors.New(errors.UnknownCode, errors.UnknownReason, "codec not registered: "+c.src.Format())
	}
	data := make(map[string]any)
	err = codec.Unmarshal(raw, &data)
	if err != nil {
		return err
	}
	c.l.Lock()
	c.data = data
	c.l.Unlock()
	return nil
}

// Unmarshal decodes the subtree at path (delimiter separated, empty for the
// whole tree) into v by round-tripping through the source codec.
func (c *Config) Unmarshal(v any, path ...string) error {
	c.l.RLock()
	sub := any(c.data)
	for _, p := range path {
		for _, seg := range strings.Split(p, c.delimiter) {
			m, ok := sub.(map[string]any)
			if !ok {
				c.l.RUnlock()
				return errors.New(errors.UnknownCode, errors.UnknownReason, "config path not found: "+p)
			}
			sub, ok = m[seg]
			if !ok {
				c.l.RUnlock()
				return errors.New(errors.UnknownCode, errors.UnknownReason, "config path not found: "+p)
			}
		}
	}
	c.l.RUnlock()
	codec := encoding.GetCodec(c.src.Format())
	raw, err := codec.Marshal(sub)
	if err != nil {
		return err
	}
	return codec.Unmarshal(raw, v)
}

func (c *Config) OnChange(fn func(*Config)) {
	c.l.Lock()
	c.changes = append(c.changes, fn)
	c.l.Unlock()
}

func (c *Config) Close() error {
	return c.src.Close()
}
