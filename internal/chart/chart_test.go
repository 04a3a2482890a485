package chart

import (
	"bytes"
	"testing"
	"time"

	"phspbench/internal/history"
	"phspbench/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	batches := []history.Batch{
		{
			Timestamp: time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC),
			Generate:  stats.Summary{Mean: 840.5},
			Copy:      stats.Summary{Mean: 17.2},
		},
		{
			Timestamp: time.Date(2026, 8, 2, 3, 0, 0, 0, time.UTC),
			Label:     "after-tuning",
			Generate:  stats.Summary{Mean: 800.1},
			Copy:      stats.Summary{Mean: 16.9},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, batches))

	html := buf.String()
	assert.Contains(t, html, "generate ms")
	assert.Contains(t, html, "copy ms")
	assert.Contains(t, html, "after-tuning")
	assert.Contains(t, html, "2026-08-01 03:00")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no batches")
}
