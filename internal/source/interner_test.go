package source

import "testing"

func TestInterner_Dedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("Roact")
	b := in.InternBytes([]byte("Roact"))
	if a != b {
		t.Fatalf("expected same id, got %d and %d", a, b)
	}
	if a == NoStringID {
		t.Fatalf("non-empty string must not get NoStringID")
	}
	if got := in.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
}

func TestInterner_EmptyIsReserved(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("empty string id = %d, want NoStringID", id)
	}
	s, ok := in.Lookup(NoStringID)
	if !ok || s != "" {
		t.Fatalf("Lookup(NoStringID) = %q, %v", s, ok)
	}
}

func TestInterner_LookupUnknown(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Fatalf("unknown id must not resolve")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustLookup on unknown id should panic")
		}
	}()
	in.MustLookup(StringID(42))
}

func TestInterner_FindIs(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Find("createElement"); ok {
		t.Fatalf("Find must not insert")
	}
	id := in.Intern("createElement")
	if got, ok := in.Find("createElement"); !ok || got != id {
		t.Fatalf("Find = %d, %v; want %d", got, ok, id)
	}
	if !in.Is(id, "createElement") || in.Is(id, "Event") {
		t.Fatalf("Is mismatch")
	}
}

func TestInterner_OwnsCopy(t *testing.T) {
	in := NewInterner()
	buf := []byte("Frame")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	if got := in.MustLookup(id); got != "Frame" {
		t.Fatalf("interned string changed with source buffer: %q", got)
	}
}
