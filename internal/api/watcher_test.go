package api

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"
)

func TestClassifyChange(t *testing.T) {
	sw := &SlotWatcher{dataDir: "/project/.paintbox"}

	tests := []struct {
		name     string
		path     string
		op       fsnotify.Op
		wantOK   bool
		wantType SlotChangeType
		wantKey  string
	}{
		{"slot created", "/project/.paintbox/paint-inventory-v1.json", fsnotify.Create, true, SlotChangeWritten, "paint-inventory-v1"},
		{"slot written", "/project/.paintbox/paint-inventory-v1.json", fsnotify.Write, true, SlotChangeWritten, "paint-inventory-v1"},
		{"slot removed", "/project/.paintbox/paint-inventory-v1.json", fsnotify.Remove, true, SlotChangeDeleted, "paint-inventory-v1"},
		{"slot renamed away", "/project/.paintbox/paint-inventory-v1.json", fsnotify.Rename, true, SlotChangeDeleted, "paint-inventory-v1"},
		{"chmod ignored", "/project/.paintbox/paint-inventory-v1.json", fsnotify.Chmod, false, "", ""},
		{"config ignored", "/project/.paintbox/config.toml", fsnotify.Write, false, "", ""},
		{"sqlite ignored", "/project/.paintbox/paintbox.db", fsnotify.Write, false, "", ""},
		{"nested ignored", "/project/.paintbox/sub/x.json", fsnotify.Write, false, "", ""},
		{"outside ignored", "/elsewhere/x.json", fsnotify.Write, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, ok := sw.classifyChange(fsnotify.Event{Name: tt.path, Op: tt.op})

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if change.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", change.Type, tt.wantType)
			}
			if change.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", change.Key, tt.wantKey)
			}
		})
	}
}

func TestClassifyChange_CrossPlatform(t *testing.T) {
	dataDir := filepath.Join("/project", ".paintbox")
	sw := &SlotWatcher{dataDir: dataDir}

	change, ok := sw.classifyChange(fsnotify.Event{Name: filepath.Join(dataDir, "k.json"), Op: fsnotify.Create})
	if !ok || change.Key != "k" || change.Path != "k.json" {
		t.Errorf("got %+v ok=%v", change, ok)
	}
}

// recordingSubscriber implements SlotWatcherSubscriber for testing
type recordingSubscriber struct {
	mu      sync.Mutex
	changes []SlotChange
	notify  chan struct{}
}

func newRecordingSubscriber() *recordingSubscriber {
	return &recordingSubscriber{notify: make(chan struct{}, 16)}
}

func (r *recordingSubscriber) OnSlotChange(change SlotChange) {
	r.mu.Lock()
	r.changes = append(r.changes, change)
	r.mu.Unlock()
	r.notify <- struct{}{}
}

func TestSlotWatcher_Subscribe(t *testing.T) {
	sw := &SlotWatcher{}
	sw.Subscribe(newRecordingSubscriber())
	sw.Subscribe(newRecordingSubscriber())

	if len(sw.subscribers) != 2 {
		t.Errorf("Expected 2 subscribers, got %d", len(sw.subscribers))
	}
}

func TestSlotWatcher_StoppedPreventsRestart(t *testing.T) {
	sw := &SlotWatcher{stopped: true}

	if err := sw.Start(); err == nil {
		t.Error("Expected error when starting stopped watcher")
	}
}

func TestSlotWatcher_StartMissingDir(t *testing.T) {
	sw, err := NewSlotWatcher(filepath.Join(t.TempDir(), "missing"), nil)
	if err != nil {
		t.Fatalf("NewSlotWatcher failed: %v", err)
	}
	defer sw.Stop()

	if err := sw.Start(); err == nil {
		t.Error("Expected error watching a missing directory")
	}
}

func TestSlotWatcher_NotifiesAndStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	sw, err := NewSlotWatcher(dir, nil)
	if err != nil {
		t.Fatalf("NewSlotWatcher failed: %v", err)
	}

	sub := newRecordingSubscriber()
	sw.Subscribe(sub)
	if err := sw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Hidden temp files must not notify
	os.WriteFile(filepath.Join(dir, ".paint-inventory-v1-123.tmp"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "paint-inventory-v1.json"), []byte("[]"), 0644)

	select {
	case <-sub.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("no slot change notification")
	}

	sub.mu.Lock()
	first := sub.changes[0]
	sub.mu.Unlock()
	if first.Key != "paint-inventory-v1" || first.Type != SlotChangeWritten {
		t.Errorf("change = %+v", first)
	}

	if err := sw.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := sw.Stop(); err != nil {
		t.Errorf("second Stop failed: %v", err)
	}
}
