package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeLayout is fixed-width so created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotInitialized is returned when the history table does not exist yet.
var ErrNotInitialized = errors.New("history database not initialized (run any wingetpick command with history enabled to create it)")

// wrapTableErr maps SQLite's missing-table error to ErrNotInitialized.
func wrapTableErr(op string, err error) error {
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%s: %w", op, ErrNotInitialized)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// RecordCommand appends a copied command to the history and returns its ID.
func (s *Store) RecordCommand(command string, packageIDs []string, at time.Time) (int64, error) {
	if packageIDs == nil {
		packageIDs = []string{}
	}
	idsJSON, err := json.Marshal(packageIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal package ids: %w", err)
	}

	query := `
		INSERT INTO command_history (created_at, command, package_count, package_ids)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		at.UTC().Format(timeLayout),
		command,
		len(packageIDs),
		string(idsJSON),
	)
	if err != nil {
		return 0, wrapTableErr("failed to record command", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get history id: %w", err)
	}
	return id, nil
}

// ListHistory returns the most recent entries first. A limit of zero or
// less returns every entry.
func (s *Store) ListHistory(limit int) ([]*HistoryEntry, error) {
	query := `
		SELECT id, created_at, command, package_ids
		FROM command_history
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapTableErr("failed to list history", err)
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var createdAt, idsJSON string

		if err := rows.Scan(&e.ID, &createdAt, &e.Command, &idsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		e.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for entry %d: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(idsJSON), &e.PackageIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal package ids for entry %d: %w", e.ID, err)
		}

		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return entries, nil
}

// ClearHistory deletes every entry and returns how many were removed.
func (s *Store) ClearHistory() (int64, error) {
	result, err := s.db.Exec("DELETE FROM command_history")
	if err != nil {
		return 0, wrapTableErr("failed to clear history", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared rows: %w", err)
	}
	return n, nil
}

// CountHistory returns the number of stored entries.
func (s *Store) CountHistory() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM command_history").Scan(&n); err != nil {
		return 0, wrapTableErr("failed to count history", err)
	}
	return n, nil
}
