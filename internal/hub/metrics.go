package hub

import "github.com/prometheus/client_golang/prometheus"

const (
	modeSync  = "sync"
	modeAsync = "async"
)

var (
	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifyd",
			Subsystem: "hub",
			Name:      "notifications_total",
			Help:      "Total number of dispatch passes by notification name",
		},
		[]string{"name", "mode"},
	)

	observerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifyd",
			Subsystem: "hub",
			Name:      "observer_errors_total",
			Help:      "Total number of observer handler failures",
		},
		[]string{"name", "mode"},
	)

	observersGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "notifyd",
			Subsystem: "hub",
			Name:      "observers",
			Help:      "Currently registered observers",
		},
		[]string{"mode"},
	)

	mediatorsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "notifyd",
			Subsystem: "hub",
			Name:      "mediators",
			Help:      "Currently registered mediators",
		},
	)
)

func init() {
	prometheus.MustRegister(notificationsTotal, observerErrorsTotal, observersGauge, mediatorsGauge)
}
