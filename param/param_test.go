package param

import (
	"testing"

	tuner "github.com/kerntune/kerntune"
)

func TestRegistryAddAndOrder(t *testing.T) {
	r := NewRegistry()
	if err := r.Add("TS", []int64{8, 16, 32}); err != nil {
		t.Fatalf("Add(TS): %v", err)
	}
	if err := r.Add("WPT", []int64{1, 2}); err != nil {
		t.Fatalf("Add(WPT): %v", err)
	}

	names := r.Names()
	want := []string{"TS", "WPT"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %v, want %v", i, names[i], want[i])
		}
	}

	p, ok := r.Get("TS")
	if !ok {
		t.Fatal("Get(TS) not found")
	}
	if len(p.Values) != 3 || p.Values[2] != 32 {
		t.Errorf("Get(TS).Values = %v", p.Values)
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	r := NewRegistry()
	if err := r.Add("TS", []int64{8, 16}); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	err := r.Add("TS", []int64{32})
	if err == nil {
		t.Fatal("expected error on duplicate name")
	}
	if !tuner.IsKind(err, tuner.ErrKindDuplicateParameter) {
		t.Errorf("expected ErrKindDuplicateParameter, got %v", err)
	}
}

func TestRegistryValuesAreCopied(t *testing.T) {
	r := NewRegistry()
	values := []int64{8, 16, 32}
	if err := r.Add("TS", values); err != nil {
		t.Fatalf("Add: %v", err)
	}
	values[0] = 999

	p, _ := r.Get("TS")
	if p.Values[0] != 8 {
		t.Errorf("registry mutated by caller slice, Values[0] = %d, want 8", p.Values[0])
	}
}

func TestRegistryHasAndLen(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
	r.Add("TS", []int64{8})
	if !r.Has("TS") {
		t.Error("Has(TS) = false")
	}
	if r.Has("WPT") {
		t.Error("Has(WPT) = true, want false")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}
