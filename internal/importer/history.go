// internal/importer/history.go
package importer

import (
	"database/sql"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/unicode/norm"
)

// History statuses.
const (
	HistoryImported = "imported"
	HistoryFailed   = "failed"
)

// HistoryEntry represents a history record.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	AttemptID  int64     `json:"attempt_id"`
	Status     string    `json:"status"`
	SourceName string    `json:"source_name"`
	SourcePath string    `json:"source_path,omitempty"`
	DestPath   string    `json:"dest_path,omitempty"`
	SizeBytes  int64     `json:"size_bytes"`
	Stage      string    `json:"stage,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryFilter specifies criteria for listing history.
type HistoryFilter struct {
	Status *string
	Limit  int
}

// HistoryStore persists history records.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a history store.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Add inserts a new history entry.
func (s *HistoryStore) Add(h *HistoryEntry) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO history (attempt_id, status, source_name, source_path, dest_path, size_bytes, stage, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.AttemptID, h.Status, h.SourceName, h.SourcePath, h.DestPath, h.SizeBytes, h.Stage, h.Reason, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	h.ID = id
	h.CreatedAt = now
	return nil
}

// List returns history entries matching the filter.
// Results are ordered by most recent first.
func (s *HistoryStore) List(f HistoryFilter) ([]*HistoryEntry, error) {
	var conditions []string
	var args []any

	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, attempt_id, status, source_name, source_path, dest_path, size_bytes, stage, reason, created_at
		FROM history ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*HistoryEntry
	for rows.Next() {
		h := &HistoryEntry{}
		if err := rows.Scan(&h.ID, &h.AttemptID, &h.Status, &h.SourceName, &h.SourcePath,
			&h.DestPath, &h.SizeBytes, &h.Stage, &h.Reason, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}

// MinMatchScore is the lowest similarity Match keeps.
const MinMatchScore = 0.70

// ScoredEntry is a history entry ranked against a query.
type ScoredEntry struct {
	*HistoryEntry
	Score float64 `json:"score"`
}

// Match ranks entries by Jaro-Winkler similarity between query and the
// imported filename (falling back to the source name), best first.
// Entries scoring below MinMatchScore are dropped.
func Match(query string, entries []*HistoryEntry) []ScoredEntry {
	q := matchKey(query)
	var out []ScoredEntry
	for _, e := range entries {
		score := float64(edlib.JaroWinklerSimilarity(q, matchKey(e.SourceName)))
		if e.DestPath != "" {
			if s := float64(edlib.JaroWinklerSimilarity(q, matchKey(path.Base(e.DestPath)))); s > score {
				score = s
			}
		}
		if score >= MinMatchScore {
			out = append(out, ScoredEntry{HistoryEntry: e, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// matchKey folds case, composes accents, and drops a .pdf extension.
func matchKey(s string) string {
	s = strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
	return strings.TrimSuffix(s, ".pdf")
}
