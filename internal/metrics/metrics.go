package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickhands_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	NotificationsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quickhands_notifications_created_total",
			Help: "Total number of notification records persisted.",
		},
	)
	PushesDeliveredCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickhands_pushes_delivered_total",
			Help: "Total number of live pushes delivered to connection handles.",
		},
		[]string{"event"},
	)
	PushesFailedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickhands_pushes_failed_total",
			Help: "Total number of live pushes that failed on a handle.",
		},
		[]string{"event"},
	)
	ApplicationsAdmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quickhands_applications_admitted_total",
			Help: "Total number of applications that passed admission control.",
		},
	)
	ApplicationsRejectedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickhands_applications_rejected_total",
			Help: "Total number of applications rejected by admission control.",
		},
		[]string{"reason"},
	)
	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickhands_dispatch_duration_seconds",
			Help:    "Duration of each notification dispatch in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 2, 10},
		},
		[]string{"event"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(NotificationsCreatedCounter)
	prometheus.MustRegister(PushesDeliveredCounter)
	prometheus.MustRegister(PushesFailedCounter)
	prometheus.MustRegister(ApplicationsAdmittedCounter)
	prometheus.MustRegister(ApplicationsRejectedCounter)
	prometheus.MustRegister(DispatchDuration)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
