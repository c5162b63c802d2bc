package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/felixgeelhaar/blueprint/pkg/storage"
)

func TestPlanWatcher_FiresOnPlanWrite(t *testing.T) {
	root := t.TempDir()
	repo := storage.NewFilesystemRepository(root)
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}

	changes := make(chan ChangeEvent, 1)
	w, err := NewPlanWatcher(root, 20*time.Millisecond, func(ev ChangeEvent) {
		select {
		case changes <- ev:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()

	// Give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)

	planPath := filepath.Join(root, storage.BlueprintDir, storage.PlanFile)
	if err := os.WriteFile(planPath, []byte(`{"goal":"g"}`), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-changes:
		if filepath.Base(ev.Path) != storage.PlanFile {
			t.Errorf("unexpected change path: %s", ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for plan change event")
	}

	cancel()
	<-done
}

func TestPlanWatcher_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	repo := storage.NewFilesystemRepository(root)
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}

	changes := make(chan ChangeEvent, 1)
	w, err := NewPlanWatcher(root, 20*time.Millisecond, func(ev ChangeEvent) {
		select {
		case changes <- ev:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)

	otherPath := filepath.Join(root, storage.BlueprintDir, "notes.txt")
	if err := os.WriteFile(otherPath, []byte("scratch"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-changes:
		t.Errorf("unexpected event for %s", ev.Path)
	case <-time.After(300 * time.Millisecond):
		// No event, as intended
	}
}
