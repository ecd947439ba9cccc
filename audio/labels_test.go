package audio

import "testing"

func TestNewLabelSetRejectsEmptyString(t *testing.T) {
	if _, err := NewLabelSet([]string{"lead", ""}); err == nil {
		t.Fatal("expected error for an empty label")
	}
}

func TestLabelSetHasAndSlice(t *testing.T) {
	set, err := NewLabelSet([]string{"lead", "bright"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Has("lead") || !set.Has("bright") {
		t.Fatal("expected set to contain both labels")
	}
	if set.Has("missing") {
		t.Fatal("set should not contain an unregistered label")
	}
	if got := len(set.Slice()); got != 2 {
		t.Errorf("len(Slice()) = %d, want 2", got)
	}
}
