package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wasul"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics exposes registry counters and HTTP instruments.
type Metrics struct {
	addressesRegistered prometheus.Counter
	lookups             prometheus.Counter
	deliveryReports     *prometheus.CounterVec
	keysIssued          prometheus.Counter
	invoicesGenerated   prometheus.Counter
	invoicesPaid        prometheus.Counter
	httpDuration        *prometheus.HistogramVec
}

// New creates instruments and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		addressesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "addresses_registered_total",
			Help:      "Total number of registered addresses.",
		}),
		lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of billed partner lookups.",
		}),
		deliveryReports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_reports_total",
			Help:      "Total number of delivery reports by outcome.",
		}, []string{"outcome"}),
		keysIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_keys_issued_total",
			Help:      "Total number of issued partner API keys.",
		}),
		invoicesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_generated_total",
			Help:      "Total number of generated invoices.",
		}),
		invoicesPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_paid_total",
			Help:      "Total number of mark-paid operations.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	collectors := []prometheus.Collector{
		m.addressesRegistered,
		m.lookups,
		m.deliveryReports,
		m.keysIssued,
		m.invoicesGenerated,
		m.invoicesPaid,
		m.httpDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordRegistration counts a stored address.
func (m *Metrics) RecordRegistration() {
	if m == nil {
		return
	}
	m.addressesRegistered.Inc()
}

// RecordLookup counts a billed lookup.
func (m *Metrics) RecordLookup() {
	if m == nil {
		return
	}
	m.lookups.Inc()
}

// RecordDelivery counts a delivery report by outcome.
func (m *Metrics) RecordDelivery(success bool) {
	if m == nil {
		return
	}
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	m.deliveryReports.WithLabelValues(outcome).Inc()
}

// RecordKeyIssued counts an issued API key.
func (m *Metrics) RecordKeyIssued() {
	if m == nil {
		return
	}
	m.keysIssued.Inc()
}

// RecordInvoice counts a generated invoice.
func (m *Metrics) RecordInvoice() {
	if m == nil {
		return
	}
	m.invoicesGenerated.Inc()
}

// RecordInvoicePaid counts a mark-paid call.
func (m *Metrics) RecordInvoicePaid() {
	if m == nil {
		return
	}
	m.invoicesPaid.Inc()
}

// ObserveRequest records HTTP request latency. Route is the matched pattern,
// never the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
