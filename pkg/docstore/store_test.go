package docstore

import (
	"context"
	"errors"
	"testing"
)

// storeContract exercises the behavior shared by all backends.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) = %v, want ErrNotFound", err)
	}

	doc := []byte(`{"version":1,"models":[]}`)
	if err := s.Save(ctx, "empty", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "empty")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("Load = %s, want %s", got, doc)
	}

	// Overwrite under the same name.
	doc2 := []byte(`{"version":1,"models":[{"type":"Toolbar"}]}`)
	if err := s.Save(ctx, "empty", doc2); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, _ = s.Load(ctx, "empty")
	if string(got) != string(doc2) {
		t.Fatalf("Load after overwrite = %s", got)
	}

	if err := s.Save(ctx, "another", doc); err != nil {
		t.Fatalf("Save another: %v", err)
	}
	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "another" || names[1] != "empty" {
		t.Fatalf("List = %v, want [another empty]", names)
	}

	if err := s.Delete(ctx, "empty"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "empty"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after Delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "empty"); err != nil {
		t.Fatalf("Delete of missing document = %v, want nil", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestDiskStore(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	storeContract(t, s)
}

func TestDiskStoreRejectsPathEscapes(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		if err := s.Save(ctx, name, []byte("{}")); err == nil {
			t.Errorf("Save(%q) succeeded, want error", name)
		}
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data := []byte(`{"version":1}`)
	if err := s.Save(ctx, "doc", data); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data[0] = 'X'

	got, err := s.Load(ctx, "doc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got[0] != '{' {
		t.Error("store aliased the caller's buffer")
	}
}
