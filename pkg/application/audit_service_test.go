package application_test

import (
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/application"
	"github.com/felixgeelhaar/blueprint/pkg/storage"
)

func newAuditFixture(t *testing.T) (*application.AuditService, *storage.FilesystemRepository) {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}
	return application.NewAuditService(repo), repo
}

func TestAuditService_ChainAndVerify(t *testing.T) {
	audit, _ := newAuditFixture(t)

	if err := audit.Log("workspace.initialized", "human", nil); err != nil {
		t.Fatal(err)
	}
	if err := audit.Log("plan.generated", "ai", map[string]interface{}{"plan_id": "p1"}); err != nil {
		t.Fatal(err)
	}

	events, err := audit.GetTimeline()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].PrevHash != events[0].Hash {
		t.Error("second event must chain to the first")
	}

	violations, err := audit.VerifyIntegrity()
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf("clean chain reported violations: %v", violations)
	}
}

func TestAuditService_DetectsTampering(t *testing.T) {
	audit, repo := newAuditFixture(t)

	_ = audit.Log("a", "human", nil)
	_ = audit.Log("b", "ai", nil)

	events, _ := repo.LoadEvents()
	events[0].Action = "rewritten-history"

	// Rewrite the log with the tampered event
	path, _ := repo.ResolvePath(storage.EventsFile)
	rewriteEvents(t, path, events)

	violations, err := audit.VerifyIntegrity()
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) == 0 {
		t.Error("tampered event should produce violations")
	}
}

func TestAuditService_GetPlanRate(t *testing.T) {
	audit, _ := newAuditFixture(t)

	rate, err := audit.GetPlanRate()
	if err != nil || rate != 0 {
		t.Errorf("empty log should yield rate 0, got (%v, %v)", rate, err)
	}

	_ = audit.Log("plan.generated", "ai", nil)
	_ = audit.Log("plan.generated", "ai", nil)

	rate, err = audit.GetPlanRate()
	if err != nil {
		t.Fatal(err)
	}
	if rate != 2 {
		t.Errorf("two plans in under a day should yield rate 2, got %v", rate)
	}
}
