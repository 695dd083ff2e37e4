// Package watch drives conversions from an inbox directory: vocabulary
// files dropped into the inbox are converted as they appear.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LARAontologies/voc4cat-tool/convert"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 100

	defaultDebounce = 500 * time.Millisecond
)

// Event is one inbox file ready for conversion.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string
}

// Watcher watches an inbox directory and emits an Event for every new or
// changed convertible file. Changes are debounced and deduplicated by
// content hash, so editors saving in multiple steps trigger one conversion.
type Watcher struct {
	inboxDir string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]struct{}

	hashMu sync.RWMutex
	hashes map[string]string

	events chan Event

	droppedEvents atomic.Int64
}

// NewWatcher creates a watcher for inboxDir. A zero debounce means the
// default of 500ms.
func NewWatcher(inboxDir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		inboxDir: inboxDir,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
		pending:  make(map[string]struct{}),
		hashes:   make(map[string]string),
		events:   make(chan Event, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching the inbox. The events channel is closed when the
// context ends or the watcher is stopped.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.inboxDir, 0755); err != nil {
		return err
	}
	if err := w.watcher.Add(w.inboxDir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("inbox watcher started",
		"inbox", w.inboxDir,
		"debounce", w.debounce)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.hashMu.Lock()
		delete(w.hashes, event.Name)
		w.hashMu.Unlock()
		return
	}
	if !convertible(event.Name) {
		return
	}
	// Editors write temp files; only the final name under the inbox counts.
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("inbox change detected", "path", event.Name, "op", event.Op.String())
}

func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := make([]string, 0, len(w.pending))
	for p := range w.pending {
		toProcess = append(toProcess, p)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	for _, path := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				w.logger.Warn("failed to read inbox file", "path", path, "error", err)
			}
			continue
		}
		sum := sha256.Sum256(content)
		newHash := hex.EncodeToString(sum[:])

		w.hashMu.RLock()
		oldHash, had := w.hashes[path]
		w.hashMu.RUnlock()
		if had && oldHash == newHash {
			continue
		}
		w.hashMu.Lock()
		w.hashes[path] = newHash
		w.hashMu.Unlock()

		w.sendEvent(Event{Path: path})
	}
}

func (w *Watcher) sendEvent(event Event) {
	select {
	case w.events <- event:
		w.logger.Debug("sent watch event", "path", event.Path)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("event channel full, dropping event",
			"path", event.Path, "total_dropped", dropped)
	}
}

func convertible(path string) bool {
	return convert.IsExcelFile(path) || convert.RDFFileToken(path) != ""
}

// Run watches the inbox and converts every emitted file until the context
// ends. Conversion failures are logged, not fatal; one bad file must not
// stop the inbox.
func Run(ctx context.Context, inboxDir string, debounce time.Duration, opts convert.Options, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := NewWatcher(inboxDir, debounce, logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			if err := convert.ConvertFile(event.Path, opts); err != nil {
				logger.Error("conversion failed", "path", event.Path, "error", err)
				continue
			}
			logger.Info("converted inbox file", "path", event.Path)
		}
	}
}
