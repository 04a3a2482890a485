package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTrial(t *testing.T) {
	okBefore := testutil.ToFloat64(TrialsTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(TrialsTotal.WithLabelValues("error"))

	ObserveTrial(150*time.Millisecond, true)
	ObserveTrial(150*time.Millisecond, true)
	ObserveTrial(2*time.Second, false)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(TrialsTotal.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(TrialsTotal.WithLabelValues("error")))
}

func TestRecordBatchMeans(t *testing.T) {
	RecordBatchMeans(840.5, 17.2)

	assert.Equal(t, 840.5, testutil.ToFloat64(LastMeanMs.WithLabelValues("generate")))
	assert.Equal(t, 17.2, testutil.ToFloat64(LastMeanMs.WithLabelValues("copy")))
}
