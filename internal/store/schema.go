package store

// schemaSQL creates the history table on first open. The database file
// persists between runs, so creation is conditional.
const schemaSQL = `CREATE TABLE IF NOT EXISTS history (
    entry_id TEXT PRIMARY KEY,
    performed_at TEXT NOT NULL,
    category TEXT NOT NULL,
    operation TEXT NOT NULL,
    input TEXT NOT NULL,
    result TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_performed_at
    ON history (performed_at DESC);
`
