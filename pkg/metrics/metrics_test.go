package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementUsersCreated()
	m.IncrementUsersCreated()
	m.IncrementUsersUpdated(ModePatch)
	m.IncrementUsersDeleted()
	m.IncrementSearches()
	m.RecordFailure("patch", "not_updated")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UsersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UsersUpdated.WithLabelValues(ModePatch)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.UsersUpdated.WithLabelValues(ModeFull)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UsersDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("patch", "not_updated")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementUsersCreated()
		m.IncrementUsersUpdated(ModeFull)
		m.IncrementUsersDeleted()
		m.IncrementSearches()
		m.RecordFailure("create", "invalid_data")
	})
}
