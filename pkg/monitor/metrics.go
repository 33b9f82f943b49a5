package monitor

import "github.com/prometheus/client_golang/prometheus"

var (
	promCertsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "squatwatch_certs_processed_total",
		Help: "Total number of certificate records received from the stream",
	})
	promMatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "squatwatch_matches_total",
		Help: "Total number of watch-list matches",
	}, []string{"source"})
	promThreats = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "squatwatch_threats_total",
		Help: "Total number of reportable threats recorded",
	}, []string{"level"})
	promAlertsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "squatwatch_alerts_sent_total",
		Help: "Total number of alert emails delivered",
	})
	promLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "squatwatch_lookups_total",
		Help: "Total number of registration lookup requests",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(promCertsProcessed, promMatches, promThreats, promAlertsSent, promLookups)
}
