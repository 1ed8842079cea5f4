package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hamzabinkhalid/dataset-comparator/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// Every pooled connection would get its own empty in-memory database
	database.SetMaxOpenConns(1)

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

var sampleResult = models.ComparisonResult{
	Count1: 8, Count2: 9, Distinct1: 6, Distinct2: 6, TotalOverlap: 11, DistinctOverlap: 4,
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run, err := db.InsertRun(models.Run{
		LeftSources:  []string{"A_f-s.csv"},
		RightSources: []string{"B_f-s.csv", "extra.csv"},
		Result:       sampleResult,
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	if run.RunID == "" {
		t.Error("InsertRun() returned empty run ID")
	}
	if run.CreatedAt.IsZero() {
		t.Error("InsertRun() returned zero CreatedAt")
	}

	got, err := db.GetRun(run.RunID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}

	if got.Result != sampleResult {
		t.Errorf("got.Result = %+v, want %+v", got.Result, sampleResult)
	}
	if len(got.RightSources) != 2 || got.RightSources[1] != "extra.csv" {
		t.Errorf("got.RightSources = %v, want [B_f-s.csv extra.csv]", got.RightSources)
	}
	if len(got.LeftSources) != 1 || got.LeftSources[0] != "A_f-s.csv" {
		t.Errorf("got.LeftSources = %v, want [A_f-s.csv]", got.LeftSources)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("got.CreatedAt = %v, want %v", got.CreatedAt, run.CreatedAt)
	}
}

func TestInsertRun_KeepsGivenID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run, err := db.InsertRun(models.Run{RunID: "fixed-id", LeftSources: []string{"a"}, RightSources: []string{"b"}})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if run.RunID != "fixed-id" {
		t.Errorf("run.RunID = %q, want fixed-id", run.RunID)
	}

	// Duplicate IDs are rejected
	if _, err := db.InsertRun(models.Run{RunID: "fixed-id", LeftSources: []string{"a"}, RightSources: []string{"b"}}); err == nil {
		t.Error("InsertRun() with duplicate ID error = nil, want error")
	}
}

func TestGetRun_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetRun("does-not-exist")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("GetRun() error = %v, want ErrRunNotFound", err)
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		_, err := db.InsertRun(models.Run{
			RunID:        id,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			LeftSources:  []string{"a.csv"},
			RightSources: []string{"b.csv"},
		})
		if err != nil {
			t.Fatalf("InsertRun(%s) error = %v", id, err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}
	if runs[0].RunID != "third" || runs[2].RunID != "first" {
		t.Errorf("runs order = %s,%s,%s, want newest first", runs[0].RunID, runs[1].RunID, runs[2].RunID)
	}

	limited, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}

func TestListRuns_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}

func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if db.Path() != path {
		t.Errorf("db.Path() = %q, want %q", db.Path(), path)
	}
	if _, err := db.InsertRun(models.Run{LeftSources: []string{"a"}, RightSources: []string{"b"}}); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	db.Close()

	// Reopening keeps existing data
	db, err = Open(path)
	if err != nil {
		t.Fatalf("Open() second call error = %v", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("len(runs) = %d, want 1", len(runs))
	}
}

func TestNewRunID(t *testing.T) {
	a, err := NewRunID()
	if err != nil {
		t.Fatalf("NewRunID() error = %v", err)
	}
	b, _ := NewRunID()
	if a == b {
		t.Error("NewRunID() returned the same ID twice")
	}
	if len(a) != 36 {
		t.Errorf("len(NewRunID()) = %d, want 36", len(a))
	}
}
