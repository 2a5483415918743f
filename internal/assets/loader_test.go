package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mohamedtouja/multipoles/internal/storage"
)

const objAsset = `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func newTestLoader(t *testing.T, timeout time.Duration) *Loader {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return NewLoader(store, timeout)
}

func TestLoader_EmptyURL(t *testing.T) {
	l := newTestLoader(t, time.Second)
	if _, err := l.Load(context.Background(), ""); !errors.Is(err, ErrNoAssetURL) {
		t.Errorf("Expected ErrNoAssetURL, got %v", err)
	}
}

func TestLoader_FetchDecodeAndCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(objAsset))
	}))
	defer srv.Close()

	l := newTestLoader(t, time.Second)
	url := srv.URL + "/models/tri.obj"

	s, err := l.Load(context.Background(), url)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(s.Meshes) != 1 {
		t.Fatalf("Expected 1 mesh, got %d", len(s.Meshes))
	}

	// Second load must come from the cache
	if _, err := l.Load(context.Background(), url); err != nil {
		t.Fatalf("Cached load failed: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("Expected 1 upstream fetch, got %d", hits)
	}
}

func TestLoader_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := newTestLoader(t, time.Second)
	if _, err := l.Load(context.Background(), srv.URL+"/missing.obj"); err == nil {
		t.Error("Expected error for 404 asset")
	}
}

func TestLoader_UnparsableAssetNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not geometry"))
	}))
	defer srv.Close()

	l := newTestLoader(t, time.Second)
	url := srv.URL + "/broken.obj"

	if _, err := l.Load(context.Background(), url); err == nil {
		t.Fatal("Expected decode error")
	}
	if _, ok := l.store.Lookup(url); ok {
		t.Error("Broken asset must not be cached")
	}
}

func TestLoader_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	l := newTestLoader(t, 50*time.Millisecond)

	start := time.Now()
	_, err := l.Load(context.Background(), srv.URL+"/slow.obj")
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Load did not respect the deadline")
	}
}
