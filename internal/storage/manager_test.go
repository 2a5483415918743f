// manager_test.go - Tests for the asset cache
package storage

import (
	"io"
	"strings"
	"testing"
)

func TestLocalStore_SaveAndLookup(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	url := "https://cdn.example.com/models/stand.glb"
	info, err := store.Save(url, "stand.glb", strings.NewReader("glb-bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if info.ID != AssetID(url) {
		t.Errorf("Expected URL-derived ID %s, got %s", AssetID(url), info.ID)
	}
	if info.Size != int64(len("glb-bytes")) {
		t.Errorf("Expected size %d, got %d", len("glb-bytes"), info.Size)
	}

	// Lookup by source URL hits the same record
	got, ok := store.Lookup(url)
	if !ok {
		t.Fatal("Expected Lookup hit")
	}
	if got.ID != info.ID {
		t.Errorf("Lookup returned %s, want %s", got.ID, info.ID)
	}

	// Bytes round-trip
	rc, err := store.Open(info.ID)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "glb-bytes" {
		t.Errorf("Unexpected asset bytes: %q", data)
	}
}

func TestLocalStore_SameURLOverwrites(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	url := "https://cdn.example.com/models/a.glb"
	first, _ := store.Save(url, "a.glb", strings.NewReader("v1"))
	second, _ := store.Save(url, "a.glb", strings.NewReader("v2-longer"))

	if first.ID != second.ID {
		t.Errorf("Expected stable ID for the same URL, got %s vs %s", first.ID, second.ID)
	}

	list, _ := store.List(10)
	if len(list) != 1 {
		t.Errorf("Expected a single cache entry, got %d", len(list))
	}
	if list[0].Size != int64(len("v2-longer")) {
		t.Errorf("Expected overwritten size, got %d", list[0].Size)
	}
}

func TestLocalStore_Delete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	url := "https://cdn.example.com/models/b.glb"
	info, _ := store.Save(url, "b.glb", strings.NewReader("data"))

	if err := store.Delete(info.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.Get(info.ID); err == nil {
		t.Error("Expected Get to fail after delete")
	}
	if _, ok := store.Lookup(url); ok {
		t.Error("Expected Lookup miss after delete")
	}
	if err := store.Delete(info.ID); err == nil {
		t.Error("Expected second delete to fail")
	}
}
