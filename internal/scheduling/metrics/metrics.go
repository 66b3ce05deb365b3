package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Validator label values.
const (
	ValidatorBasic         = "basic"
	ValidatorCollaborative = "collaborative"
)

type Metrics struct {
	ValidationsTotal    *prometheus.CounterVec
	SlotsCheckedTotal   *prometheus.CounterVec
	SlotErrorsTotal     *prometheus.CounterVec
	ValidationDurations *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "slotcheck_validations_total",
			Help: "Total number of validation calls by validator and outcome",
		}, []string{"validator", "outcome"}),
		SlotsCheckedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "slotcheck_slots_checked_total",
			Help: "Total number of candidate timestamps classified",
		}, []string{"validator"}),
		SlotErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "slotcheck_slot_errors_total",
			Help: "Total number of slots classified per error code",
		}, []string{"validator", "code"}),
		ValidationDurations: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slotcheck_validation_duration_seconds",
			Help:    "Validation call duration by validator",
			Buckets: prometheus.DefBuckets,
		}, []string{"validator"}),
	}
}

// IncValidation records one validation call and its overall outcome.
func (m *Metrics) IncValidation(validator string, valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.ValidationsTotal.WithLabelValues(validator, outcome).Inc()
}

// AddSlotsChecked records how many candidate timestamps a call classified.
func (m *Metrics) AddSlotsChecked(validator string, count int) {
	m.SlotsCheckedTotal.WithLabelValues(validator).Add(float64(count))
}

// IncSlotError records one slot classified with a non-none code.
func (m *Metrics) IncSlotError(validator, code string) {
	m.SlotErrorsTotal.WithLabelValues(validator, code).Inc()
}

// ObserveDuration records how long a validation call took.
func (m *Metrics) ObserveDuration(validator string, d time.Duration) {
	m.ValidationDurations.WithLabelValues(validator).Observe(d.Seconds())
}
