package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-sdv/trailerd/encoding/yaml"
	"github.com/go-sdv/trailerd/logger"
	"github.com/go-sdv/trailerd/pkg/routine"
)

type File struct {
	path   string
	format string
	notify chan struct{}
	done   chan struct{}
}

type Option func(*File)

func Format(format string) Option {
	return func(f *File) {
		f.format = format
	}
}

func NewFile(path string, opts ...Option) *File {
	f := &File{
		path:   path,
		format: yaml.Name,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	routine.GoSafe(context.TODO(), func() {
		f.watch()
	})
	return f
}

func (f *File) watch() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": err}, "file watcher create error")
		return
	}
	defer w.Close()
	err = w.Add(filepath.Dir(f.path))
	if err != nil {
		logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": err, "path": f.path}, "file watch error")
		return
	}
	for {
		select {
		case event := <-w.Events:
			// reload when the config file itself is written or recreated
			const mask = fsnotify.Write | fsnotify.Create
			if event.Op&mask != 0 && filepath.Clean(event.Name) == filepath.Clean(f.path) {
				select {
				case f.notify <- struct{}{}:
				default:
				}
			}
		case e := <-w.Errors:
			logger.Log(context.TODO(), logger.ErrorLevel, map[string]interface{}{"error": e}, "file watch error")
		case <-f.done:
			return
		}
	}
}

func (f *File) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f *File) Watch() <-chan struct{} {
	return f.notify
}

func (f *File) Close() error {
	close(f.done)
	return nil
}

func (f *File) Format() string {
	return f.format
}
