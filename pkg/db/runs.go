package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/hamzabinkhalid/dataset-comparator/models"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// NewRunID generates a random run identifier.
func NewRunID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate run ID: %w", err)
	}
	return id.String(), nil
}

// InsertRun records a comparison. Missing RunID and CreatedAt are filled in
// and the stored run is returned.
func (db *DB) InsertRun(run models.Run) (models.Run, error) {
	if run.RunID == "" {
		id, err := NewRunID()
		if err != nil {
			return run, err
		}
		run.RunID = id
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	leftJSON, err := json.Marshal(run.LeftSources)
	if err != nil {
		return run, fmt.Errorf("failed to marshal left sources: %w", err)
	}
	rightJSON, err := json.Marshal(run.RightSources)
	if err != nil {
		return run, fmt.Errorf("failed to marshal right sources: %w", err)
	}

	r := run.Result
	_, err = db.Exec(`
		INSERT INTO runs (run_id, created_at, left_sources, right_sources,
			count1, count2, distinct1, distinct2, total_overlap, distinct_overlap)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.CreatedAt, string(leftJSON), string(rightJSON),
		r.Count1, r.Count2, r.Distinct1, r.Distinct2, r.TotalOverlap, r.DistinctOverlap)
	if err != nil {
		return run, fmt.Errorf("failed to insert run: %w", err)
	}

	return run, nil
}

// GetRun loads a single run by ID.
func (db *DB) GetRun(runID string) (*models.Run, error) {
	row := db.QueryRow(`
		SELECT run_id, created_at, left_sources, right_sources,
			count1, count2, distinct1, distinct2, total_overlap, distinct_overlap
		FROM runs
		WHERE run_id = ?
	`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
// A limit <= 0 returns every run.
func (db *DB) ListRuns(limit int) ([]models.Run, error) {
	query := `
		SELECT run_id, created_at, left_sources, right_sources,
			count1, count2, distinct1, distinct2, total_overlap, distinct_overlap
		FROM runs
		ORDER BY created_at DESC, rowid DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s rowScanner) (*models.Run, error) {
	var (
		run       models.Run
		leftJSON  string
		rightJSON string
	)
	r := &run.Result
	err := s.Scan(&run.RunID, &run.CreatedAt, &leftJSON, &rightJSON,
		&r.Count1, &r.Count2, &r.Distinct1, &r.Distinct2, &r.TotalOverlap, &r.DistinctOverlap)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(leftJSON), &run.LeftSources); err != nil {
		return nil, fmt.Errorf("failed to parse left sources: %w", err)
	}
	if err := json.Unmarshal([]byte(rightJSON), &run.RightSources); err != nil {
		return nil, fmt.Errorf("failed to parse right sources: %w", err)
	}
	return &run, nil
}
