package monitor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"digital.vasic.artifacts/pkg/logging"
)

// Watcher emits an EventFile for every file created under the
// results tree. New subdirectories are watched as they appear.
type Watcher struct {
	root      string
	collector *EventCollector
	logger    logging.Logger
	ready     chan struct{}
}

// NewWatcher creates a watcher for root.
func NewWatcher(
	root string,
	collector *EventCollector,
	logger logging.Logger,
) *Watcher {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &Watcher{
		root:      root,
		collector: collector,
		logger:    logger,
		ready:     make(chan struct{}),
	}
}

// Ready is closed once the initial tree is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. The root is created if it
// does not exist yet.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.root, 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.root, false); err != nil {
		return err
	}
	close(w.ready)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				w.created(fw, ev.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.ErrorField(err))
		}
	}
}

func (w *Watcher) created(fw *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		if err := w.addTree(fw, path, true); err != nil {
			w.logger.Warn("watch directory failed",
				logging.StringField("path", path), logging.ErrorField(err))
		}
		return
	}
	w.emitFile(path)
}

// addTree watches dir and its subdirectories. When emitExisting is
// set, files already present are reported; they may have been
// written before the directory was watched.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string, emitExisting bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			return nil
		}
		if emitExisting {
			w.emitFile(path)
		}
		return nil
	})
}

func (w *Watcher) emitFile(path string) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)
	w.collector.Emit(ArtifactEvent{
		Type:     EventFile,
		Scenario: ScenarioOf(rel),
		Path:     rel,
	})
}

// ScenarioOf extracts the scenario identity from a slash-separated
// path relative to the results root: "screenshots/<id>.png",
// "trace/<id>.zip" or "logs/<id>/...". Unrecognized paths yield "".
func ScenarioOf(rel string) string {
	parts := strings.Split(rel, "/")
	switch {
	case len(parts) >= 3 && parts[0] == "logs":
		return parts[1]
	case len(parts) == 2:
		return strings.TrimSuffix(parts[1], filepath.Ext(parts[1]))
	}
	return ""
}
