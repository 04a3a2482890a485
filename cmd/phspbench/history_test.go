package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"phspbench/internal/harness"
	"phspbench/internal/history"
	"phspbench/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBatch(id int64, label string, genMean, cpMean float64) history.Batch {
	return history.Batch{
		ID:         id,
		Timestamp:  time.Date(2026, 8, int(id), 3, 0, 0, 0, time.UTC),
		Label:      label,
		Executable: "./build/PhSp",
		Trials:     harness.Series{{Generate: genMean, Copy: cpMean}},
		Generate:   stats.Summary{Mean: genMean, Std: 0.5},
		Copy:       stats.Summary{Mean: cpMean, Std: 0.1},
	}
}

func TestHistoryCmd(t *testing.T) {
	defer restoreFactories()

	mockS := &mockStore{batches: []history.Batch{
		storedBatch(1, "baseline", 840.5, 17.2),
		storedBatch(2, "tuned", 800.1, 16.9),
	}}
	newStoreFunc = func(cfg history.StoreConfig) (history.Store, error) { return mockS, nil }

	buf := new(bytes.Buffer)
	historyCmd.SetOut(buf)

	err := executeHistoryCmd(historyCmd, nil)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "baseline")
	assert.Contains(t, output, "tuned")
	assert.Contains(t, output, "840.500")
	assert.Contains(t, output, "./build/PhSp")
}

func TestHistoryCmd_Empty(t *testing.T) {
	defer restoreFactories()

	newStoreFunc = func(cfg history.StoreConfig) (history.Store, error) { return &mockStore{}, nil }

	buf := new(bytes.Buffer)
	historyCmd.SetOut(buf)

	err := executeHistoryCmd(historyCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No saved batches")
}

func TestHistoryCmd_JSON(t *testing.T) {
	defer restoreFactories()
	defer func() { historyJSON = false }()

	mockS := &mockStore{batches: []history.Batch{
		storedBatch(1, "baseline", 840.5, 17.2),
	}}
	newStoreFunc = func(cfg history.StoreConfig) (history.Store, error) { return mockS, nil }
	historyJSON = true

	buf := new(bytes.Buffer)
	historyCmd.SetOut(buf)

	err := executeHistoryCmd(historyCmd, nil)
	require.NoError(t, err)

	var decoded []history.Batch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "baseline", decoded[0].Label)
	assert.Equal(t, 840.5, decoded[0].Generate.Mean)
}
