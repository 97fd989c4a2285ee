package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Update modes
const (
	ModeFull  = "full"
	ModePatch = "patch"
)

// Metrics holds the Prometheus collectors of the user directory.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	UsersCreated prometheus.Counter
	UsersUpdated *prometheus.CounterVec
	UsersDeleted prometheus.Counter
	Searches     prometheus.Counter
	Failures     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "userdir_users_created_total",
			Help: "Total number of users created",
		}),
		UsersUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userdir_users_updated_total",
			Help: "Total number of successful user updates by mode (full, patch)",
		}, []string{"mode"}),
		UsersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "userdir_users_deleted_total",
			Help: "Total number of users deleted",
		}),
		Searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "userdir_birthdate_searches_total",
			Help: "Total number of birth date range searches served",
		}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userdir_operation_failures_total",
			Help: "Total number of failed user operations by operation and failure kind",
		}, []string{"operation", "kind"}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	if m != nil {
		m.UsersCreated.Inc()
	}
}

// IncrementUsersUpdated mode is ModeFull or ModePatch.
func (m *Metrics) IncrementUsersUpdated(mode string) {
	if m != nil {
		m.UsersUpdated.WithLabelValues(mode).Inc()
	}
}

func (m *Metrics) IncrementUsersDeleted() {
	if m != nil {
		m.UsersDeleted.Inc()
	}
}

func (m *Metrics) IncrementSearches() {
	if m != nil {
		m.Searches.Inc()
	}
}

func (m *Metrics) RecordFailure(operation, kind string) {
	if m != nil {
		m.Failures.WithLabelValues(operation, kind).Inc()
	}
}
