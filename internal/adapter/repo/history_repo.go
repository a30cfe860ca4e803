// Package repo holds the PostgreSQL adapters.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// elidedImageMarker replaces inline image payloads before persistence; data
// URLs run to megabytes and have no value in history rows.
const elidedImageMarker = "[BASE64_IMAGE_DATA]"

// HistoryEntry is one stored generation.
type HistoryEntry struct {
	ID             string          `json:"id"`
	GenerationType string          `json:"generation_type"`
	Input          json.RawMessage `json:"input"`
	Output         json.RawMessage `json:"output"`
	CreatedAt      time.Time       `json:"created_at"`
}

// HistoryRepositoryPG implements generation history storage using
// PostgreSQL.
type HistoryRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository constructs a new history repository instance.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepositoryPG {
	return &HistoryRepositoryPG{pool: pool}
}

// Save persists one generation. Image payloads in the output are elided
// before marshaling.
func (r *HistoryRepositoryPG) Save(ctx context.Context, generationType string, input, output any) error {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("repo: marshal input: %w", err)
	}
	outputJSON, err := marshalElided(output)
	if err != nil {
		return fmt.Errorf("repo: marshal output: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO generation_history (id, generation_type, input, output)
VALUES ($1, $2, $3, $4);
`, uuid.NewString(), generationType, inputJSON, outputJSON)
	if err != nil {
		return fmt.Errorf("repo: insert history: %w", err)
	}
	return nil
}

// Recent returns the newest entries, newest first.
func (r *HistoryRepositoryPG) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, generation_type, input, output, created_at
FROM generation_history
ORDER BY created_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("repo: query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.GenerationType, &e.Input, &e.Output, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// marshalElided marshals output with every inline image data URL replaced by
// the elision marker, at any nesting depth.
func marshalElided(output any) ([]byte, error) {
	raw, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(elideImages(generic))
}

func elideImages(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			val[k] = elideImages(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = elideImages(inner)
		}
		return val
	case string:
		if strings.HasPrefix(val, "data:image/") {
			return elidedImageMarker
		}
		return val
	default:
		return v
	}
}
