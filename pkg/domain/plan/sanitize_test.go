package plan_test

import (
	"reflect"
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain/plan"
)

func TestSanitizeSubtasks_TruncatesAtRunoff(t *testing.T) {
	in := []string{
		"Design the schema",
		"Build the API",
		"Solution: use Trello for tracking",
		"This one never survives",
	}
	got := plan.SanitizeSubtasks(in)
	want := []string{"Design the schema", "Build the API"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SanitizeSubtasks = %v, want %v", got, want)
	}
}

func TestSanitizeSubtasks_CaseInsensitive(t *testing.T) {
	got := plan.SanitizeSubtasks([]string{"ok", "Use ASANA boards"})
	if len(got) != 1 {
		t.Errorf("expected truncation on uppercase trigger, got %v", got)
	}
}

func TestSanitizeSubtasks_CleanListUntouched(t *testing.T) {
	in := []string{"Design the schema", "Build the API", "Write tests"}
	got := plan.SanitizeSubtasks(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("clean list should pass through unchanged, got %v", got)
	}
}

func TestSanitizeSubtasks_Empty(t *testing.T) {
	if got := plan.SanitizeSubtasks(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
