package store

const schema = `
CREATE TABLE IF NOT EXISTS command_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    command TEXT NOT NULL,
    package_count INTEGER NOT NULL,
    package_ids TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_created ON command_history(created_at);
`
