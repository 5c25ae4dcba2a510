package persistence

import (
	"context"
	"strings"
	"testing"
)

type sample struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []sample{{Name: "garlic", Count: 2}, {Name: "rice", Count: 1.5}}
	if err := s.Save(ctx, KeyPantry, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out []sample
	if err := s.Load(ctx, KeyPantry, &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 || out[0].Name != "garlic" || out[1].Count != 1.5 {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestLoadMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var out []sample
	if err := s.Load(context.Background(), KeyCart, &out); err != ErrNotFound {
		t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestEnvelopeCarriesSchemaVersion(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, KeyMealQueue, []sample{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s.mu.RLock()
	doc := string(s.docs[KeyMealQueue])
	s.mu.RUnlock()

	if !strings.Contains(doc, `"schema_version":1`) {
		t.Errorf("document %q missing schema_version envelope", doc)
	}
}

func TestLoadRejectsUnknownSchemaVersion(t *testing.T) {
	s := NewMemoryStore()
	s.SeedRaw(KeyPantry, []byte(`{"schema_version":99,"data":[]}`))

	var out []sample
	if err := s.Load(context.Background(), KeyPantry, &out); err == nil {
		t.Error("Load(future version) error = nil, want error")
	}
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	s := NewMemoryStore()
	s.SeedRaw(KeyPantry, []byte("definitely not json"))

	var out []sample
	if err := s.Load(context.Background(), KeyPantry, &out); err == nil {
		t.Error("Load(corrupt) error = nil, want error")
	}
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Save(ctx, KeyCart, []sample{{Name: "a"}, {Name: "b"}})
	s.Save(ctx, KeyCart, []sample{{Name: "c"}})

	var out []sample
	if err := s.Load(ctx, KeyCart, &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 || out[0].Name != "c" {
		t.Errorf("collection = %+v, want only the last write", out)
	}
}
