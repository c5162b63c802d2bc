package application_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/felixgeelhaar/blueprint/pkg/domain"
)

func rewriteEvents(t *testing.T, path string, events []domain.Event) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			t.Fatal(err)
		}
	}
}
