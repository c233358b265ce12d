package sessionModel

import (
	"context"
	"time"
)

// SessionRecord is one answered query as appended to the session log.
type SessionRecord struct {
	Id             string          `json:"id"`
	Question       string          `json:"question"`
	Answer         string          `json:"answer"`
	Sources        []SessionSource `json:"sources,omitempty"`
	SearchType     string          `json:"search_type"`
	ResultsCount   int             `json:"results_count"`
	Confidence     float64         `json:"confidence"`
	LatencySeconds float64         `json:"latency_seconds"`
	Error          string          `json:"error,omitempty"`
	CreatedTime    time.Time       `json:"created_time"`
}

type SessionSource struct {
	Content    string  `json:"content"`
	PageNumber int     `json:"page_number"`
	Score      float64 `json:"score"`
}

// SessionLog is the append-only query log collaborator. Append stamps and
// returns an opaque record id.
type SessionLog interface {
	Append(ctx context.Context, record SessionRecord) (string, error)
}
