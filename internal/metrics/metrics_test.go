package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Houeta/staffdesk/internal/metrics"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	mtr := metrics.NewMetrics(reg)

	require.NotNil(t, mtr)
	assert.NotNil(t, mtr.Fulfillments)
	assert.NotNil(t, mtr.EmployeesReassigned)
	assert.NotNil(t, mtr.Assignments)
	assert.NotNil(t, mtr.Deletions)
	assert.NotNil(t, mtr.RequestsSubmitted)
	assert.NotNil(t, mtr.LastFulfillment)
	assert.NotNil(t, mtr.DBQueryDuration)
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	mtr := metrics.NewMetrics(reg)

	mtr.Fulfillments.WithLabelValues("success").Inc()
	mtr.EmployeesReassigned.Add(3)
	mtr.Assignments.WithLabelValues("assign").Inc()
	mtr.Deletions.WithLabelValues("employee").Add(2)

	assert.InDelta(t, 1.0, testutil.ToFloat64(mtr.Fulfillments.WithLabelValues("success")), 0.001)
	assert.InDelta(t, 3.0, testutil.ToFloat64(mtr.EmployeesReassigned), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(mtr.Assignments.WithLabelValues("assign")), 0.001)
	assert.InDelta(t, 2.0, testutil.ToFloat64(mtr.Deletions.WithLabelValues("employee")), 0.001)
}
