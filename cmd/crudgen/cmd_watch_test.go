package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hlop3z/crudgen/internal/testutil"
	"github.com/hlop3z/crudgen/pkg/crudgen"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchMatches(t *testing.T) {
	mw := &modelWatcher{name: "Product"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write yaml", fsnotify.Event{Name: "models/Product.yaml", Op: fsnotify.Write}, true},
		{"create yml", fsnotify.Event{Name: "models/Product.yml", Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: "models/Product.yaml", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "models/Product.yaml", Op: fsnotify.Chmod}, false},
		{"other model", fsnotify.Event{Name: "models/Category.yaml", Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: "models/.Product.yaml.swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mw.matches(tt.event); got != tt.want {
				t.Errorf("matches(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestWatchRegeneratesOnChange(t *testing.T) {
	root := testutil.TempDir(t)
	models := filepath.Join(root, "models")
	testutil.WriteModel(t, models, "Product", "fillable: [name]\n")

	client, err := crudgen.New(
		crudgen.WithModelsDir(models),
		crudgen.WithAppDir(filepath.Join(root, "app")),
		crudgen.WithResourcesDir(filepath.Join(root, "resources")),
		crudgen.WithRoutesDir(filepath.Join(root, "routes")),
	)
	testutil.AssertNoError(t, err)
	defer client.Close()

	var out, errOut syncBuffer
	mw := &modelWatcher{
		client:   client,
		name:     "Product",
		variant:  crudgen.API,
		dir:      models,
		out:      &out,
		errOut:   &errOut,
		debounce: 20 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- mw.run(ctx) }()

	request := filepath.Join(root, "app", "Http", "Requests", "Api", "Product", "StoreProductRequest.php")
	waitFor(t, func() bool {
		return strings.Contains(out.String(), "Watching for Changes")
	})
	if !strings.Contains(readIfExists(request), "'name' =>") {
		t.Fatalf("initial generation missing:\n%s%s", out.String(), errOut.String())
	}

	testutil.WriteModel(t, models, "Product", "fillable: [name, sku]\n")
	waitFor(t, func() bool {
		return strings.Contains(readIfExists(request), "'sku' => 'required|string|max:255',")
	})

	cancel()
	select {
	case err := <-done:
		testutil.AssertNoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	api := testutil.ReadFile(t, filepath.Join(root, "routes", "api.php"))
	testutil.AssertEqual(t, strings.Count(api, "Route::apiResource('products'"), 1)
}

func TestWatchMissingDirectory(t *testing.T) {
	client, err := crudgen.New(crudgen.WithModelsDir("./does-not-exist"))
	testutil.AssertNoError(t, err)
	defer client.Close()

	mw := &modelWatcher{
		client:   client,
		name:     "Product",
		variant:  crudgen.HTML,
		dir:      filepath.Join(testutil.TempDir(t), "missing"),
		out:      &syncBuffer{},
		errOut:   &syncBuffer{},
		debounce: time.Millisecond,
	}
	if err := mw.run(context.Background()); err == nil {
		t.Fatal("expected an error for a missing models directory")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met within 5s")
}

func readIfExists(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
