package logging

import "testing"

func TestNew(t *testing.T) {
	for _, production := range []bool{false, true} {
		logger, err := New(production, "debug")
		if err != nil {
			t.Fatalf("production=%v: %v", production, err)
		}
		if !logger.Core().Enabled(-1) {
			t.Fatalf("production=%v: debug level not enabled", production)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(false, "loud"); err == nil {
		t.Fatalf("expected error for an unknown level")
	}
}
