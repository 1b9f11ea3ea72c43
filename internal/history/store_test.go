// internal/history/store_test.go
package history

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"assetmirror/internal/pipeline"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// one connection keeps the in-memory database alive across queries
	db.SetMaxOpenConns(1)
	store, err := OpenDB(db)
	if err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testReport(id string, started time.Time) *pipeline.Report {
	r := pipeline.NewReport(id, started)
	r.FilesDiscovered = 10
	r.FilesProcessed = 8
	r.FilesSkipped = 2
	r.DiscoveryDurationMs = 12
	r.TotalDurationMs = 340
	return r
}

func TestRecordAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	report := testReport("run-1", time.Now())
	report.Errors = append(report.Errors,
		pipeline.Failure{Filepath: "/src/bad.plist", ErrorMessage: "decode failed", Function: "PlistNormalizer"},
		pipeline.Failure{Filepath: "/src/ghost.png", ErrorMessage: "broken symlink or file not found", Function: "discover"},
	)

	if err := store.Record(ctx, report, "/src", "/dest"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	run, failures, err := store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if run.SourceRoot != "/src" || run.DestRoot != "/dest" {
		t.Errorf("roots = %s, %s", run.SourceRoot, run.DestRoot)
	}
	if run.FilesProcessed != 8 || run.FilesSkipped != 2 || run.ErrorCount != 2 {
		t.Errorf("counters = %d processed, %d skipped, %d errors",
			run.FilesProcessed, run.FilesSkipped, run.ErrorCount)
	}
	if len(failures) != 2 {
		t.Fatalf("failures = %d, want 2", len(failures))
	}
	if failures[0].Function != "PlistNormalizer" {
		t.Errorf("failures[0].Function = %s", failures[0].Function)
	}
}

func TestGet_NotFound(t *testing.T) {
	store := testStore(t)

	_, _, err := store.Get(context.Background(), "no-such-run")
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("err = %v, want ErrRunNotFound", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		report := testReport(id, base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(ctx, report, "/src", "/dest"); err != nil {
			t.Fatalf("Record %s: %v", id, err)
		}
	}

	runs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len = %d, want 2", len(runs))
	}
	if runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Errorf("order = %s, %s; want run-c, run-b", runs[0].ID, runs[1].ID)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Record(context.Background(), testReport("run-x", time.Now()), "/src", "/dest"); err != nil {
		t.Fatalf("Record: %v", err)
	}
}
