package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Configuration whenever its backing file changes.
// Grounded on the fsnotify.Watcher wrapper in SeleniaProject-Orizon's
// internal/runtime/vfs package, narrowed here to a single watched file
// instead of a general virtual filesystem.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
	out  chan *Configuration
	errs chan error
}

// NewWatcher starts watching path for writes, emitting a freshly parsed
// Configuration on Changes() after each one.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path: path,
		w:    fw,
		out:  make(chan *Configuration, 1),
		errs: make(chan error, 1),
	}
	go watcher.loop()
	return watcher, nil
}

func (watcher *Watcher) loop() {
	for {
		select {
		case ev, ok := <-watcher.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := loadFile(watcher.path)
			if err != nil {
				watcher.errs <- err
				continue
			}
			watcher.out <- cfg
		case err, ok := <-watcher.w.Errors:
			if !ok {
				return
			}
			watcher.errs <- err
		}
	}
}

// Changes returns the channel of successfully reloaded configurations.
func (watcher *Watcher) Changes() <-chan *Configuration { return watcher.out }

// Errors returns the channel of reload or watch errors.
func (watcher *Watcher) Errors() <-chan error { return watcher.errs }

// Close stops watching.
func (watcher *Watcher) Close() error { return watcher.w.Close() }

func loadFile(path string) (*Configuration, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("config: reload %s: %w", path, err)
	}
	defer f.Close()
	return ReadConfig(f)
}
