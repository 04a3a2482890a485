package history

import (
	"time"

	"phspbench/internal/harness"
	"phspbench/internal/stats"
)

// Batch is one persisted benchmark batch: the raw per-trial pairs plus the
// summaries computed when the batch completed.
type Batch struct {
	ID         int64          `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Label      string         `json:"label,omitempty"`
	Executable string         `json:"executable"`
	Trials     harness.Series `json:"trials"`
	Generate   stats.Summary  `json:"generate"`
	Copy       stats.Summary  `json:"copy"`
}

// Store defines the interface for persisting benchmark batches.
type Store interface {
	Save(batch Batch) (int64, error)
	Get(id int64) (*Batch, error)
	LoadAll() ([]Batch, error)
	LoadLatest(n int) ([]Batch, error)
	Close() error
}
