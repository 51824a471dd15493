package store

import "time"

// HistoryEntry is one install command that was copied to the clipboard.
type HistoryEntry struct {
	ID         int64
	CreatedAt  time.Time
	Command    string
	PackageIDs []string
}

// PackageCount returns the number of packages the command installs.
func (e *HistoryEntry) PackageCount() int {
	return len(e.PackageIDs)
}
