package api

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amterp/paintbox/internal/config"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// SlotChangeType indicates what type of change occurred.
type SlotChangeType string

const (
	SlotChangeWritten SlotChangeType = "written"
	SlotChangeDeleted SlotChangeType = "deleted"
)

// debounceDelay coalesces the burst of events a single save produces.
const debounceDelay = 100 * time.Millisecond

// SlotChange represents a change to a storage slot file.
type SlotChange struct {
	Type SlotChangeType `json:"type"`
	Key  string         `json:"key"`
	Path string         `json:"path"` // Relative to the data directory
}

// SlotWatcherSubscriber receives slot change notifications.
type SlotWatcherSubscriber interface {
	OnSlotChange(change SlotChange)
}

// SlotWatcher watches the data directory for slot files written by other
// processes and notifies subscribers.
type SlotWatcher struct {
	watcher     *fsnotify.Watcher
	dataDir     string
	log         *zap.Logger
	mu          sync.RWMutex
	subscribers []SlotWatcherSubscriber
	debounce    map[string]*time.Timer
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	done        chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// NewSlotWatcher creates a new watcher for the given data directory.
func NewSlotWatcher(dataDir string, log *zap.Logger) (*SlotWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &SlotWatcher{
		watcher:  watcher,
		dataDir:  dataDir,
		log:      log,
		debounce: make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive slot change notifications.
func (sw *SlotWatcher) Subscribe(sub SlotWatcherSubscriber) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.subscribers = append(sw.subscribers, sub)
}

// Start begins watching the data directory.
func (sw *SlotWatcher) Start() error {
	sw.mu.Lock()
	if sw.running {
		sw.mu.Unlock()
		return nil
	}
	if sw.stopped {
		sw.mu.Unlock()
		return fmt.Errorf("slot watcher cannot be restarted after stop")
	}
	sw.running = true
	sw.mu.Unlock()

	// Slots live directly in the data directory, so one watch is enough.
	if err := sw.watcher.Add(sw.dataDir); err != nil {
		sw.mu.Lock()
		sw.running = false
		sw.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", sw.dataDir, err)
	}

	go sw.run()
	return nil
}

// Stop stops watching and waits for the event loop to exit.
func (sw *SlotWatcher) Stop() error {
	sw.mu.Lock()
	if sw.stopped {
		sw.mu.Unlock()
		return nil
	}
	wasRunning := sw.running
	sw.running = false
	sw.stopped = true
	sw.mu.Unlock()

	// Cancel pending debounce timers so they don't fire after stop
	sw.debounceMu.Lock()
	for path, timer := range sw.debounce {
		timer.Stop()
		delete(sw.debounce, path)
	}
	sw.debounceMu.Unlock()

	close(sw.stopCh)
	err := sw.watcher.Close()
	if wasRunning {
		<-sw.done
	}
	return err
}

func (sw *SlotWatcher) run() {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handleEvent(event)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.log.Warn("slot watcher error", zap.Error(err))

		case <-sw.stopCh:
			return
		}
	}
}

func (sw *SlotWatcher) handleEvent(event fsnotify.Event) {
	// Skip temp files (slot writes go through a hidden temp file) and backups
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return
	}

	sw.debounceMu.Lock()
	defer sw.debounceMu.Unlock()

	sw.mu.RLock()
	stopped := sw.stopped
	sw.mu.RUnlock()
	if stopped {
		return
	}

	if timer, exists := sw.debounce[event.Name]; exists {
		timer.Stop()
	}
	sw.debounce[event.Name] = time.AfterFunc(debounceDelay, func() {
		sw.emitChange(event)
		sw.debounceMu.Lock()
		delete(sw.debounce, event.Name)
		sw.debounceMu.Unlock()
	})
}

func (sw *SlotWatcher) emitChange(event fsnotify.Event) {
	// Debounce timer may fire after Stop
	sw.mu.RLock()
	if sw.stopped {
		sw.mu.RUnlock()
		return
	}
	subs := make([]SlotWatcherSubscriber, len(sw.subscribers))
	copy(subs, sw.subscribers)
	sw.mu.RUnlock()

	change, ok := sw.classifyChange(event)
	if !ok {
		return
	}

	sw.log.Debug("slot changed", zap.String("key", change.Key), zap.String("type", string(change.Type)))
	for _, sub := range subs {
		sub.OnSlotChange(change)
	}
}

// classifyChange maps an fsnotify event to a slot change. Only files named
// <key>.json directly inside the data directory are slots.
func (sw *SlotWatcher) classifyChange(event fsnotify.Event) (SlotChange, bool) {
	relPath, err := filepath.Rel(sw.dataDir, event.Name)
	if err != nil || strings.Contains(relPath, string(filepath.Separator)) || strings.HasPrefix(relPath, "..") {
		return SlotChange{}, false
	}
	if !strings.HasSuffix(relPath, config.SlotFileSuffix) {
		return SlotChange{}, false
	}

	change := SlotChange{
		Key:  strings.TrimSuffix(relPath, config.SlotFileSuffix),
		Path: relPath,
	}

	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		change.Type = SlotChangeWritten
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		change.Type = SlotChangeDeleted // Rename source is effectively deleted
	default:
		return SlotChange{}, false
	}

	return change, true
}
