package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- Runs table: one row per recorded comparison
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,

    -- Input sources as JSON arrays: ["A_f.csv", "extra.csv"]
    left_sources TEXT NOT NULL,
    right_sources TEXT NOT NULL,

    count1 INTEGER NOT NULL,
    count2 INTEGER NOT NULL,
    distinct1 INTEGER NOT NULL,
    distinct2 INTEGER NOT NULL,
    total_overlap INTEGER NOT NULL,
    distinct_overlap INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
