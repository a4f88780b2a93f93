package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundtrip(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	key := "pom/org/demo/lib/lib-1.0.pom"
	if err := st.Set(ctx, key, []byte("<project/>")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := st.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported a miss after Set")
	}
	if string(data) != "<project/>" {
		t.Errorf("Get = %q, want %q", data, "<project/>")
	}

	ok, err = st.Has(ctx, key)
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if !ok {
		t.Error("Has = false after Set")
	}

	// Keys map onto the directory layout.
	if _, err := os.Stat(filepath.Join(dir, "pom", "org", "demo", "lib", "lib-1.0.pom")); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}

	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := st.Has(ctx, key); ok {
		t.Error("Has = true after Delete")
	}
}

func TestFileStoreMiss(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	_, ok, err := st.Get(ctx, "metadata/org/demo/lib/maven-metadata.xml")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get reported a hit for an absent key")
	}
	if ok, _ := st.Has(ctx, "absent"); ok {
		t.Error("Has = true for an absent key")
	}
	// Deleting an absent key is not an error.
	if err := st.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := st.Set(ctx, "k", []byte("old")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := st.Set(ctx, "k", []byte("new")); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}
	data, _, err := st.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("Get = %q, want %q", data, "new")
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := st.Set(context.Background(), "jar/lib-1.0.jar", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, ".tmp") {
			t.Errorf("temp file left behind: %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

func TestNullStore(t *testing.T) {
	st := NewNullStore()
	ctx := context.Background()

	if err := st.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, ok, err := st.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("NullStore Get reported a hit")
	}
	if ok, _ := st.Has(ctx, "k"); ok {
		t.Error("NullStore Has = true")
	}
	if err := st.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
