package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsIngested = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "istari", Subsystem: "intent", Name: "events_ingested_total", Help: "Total canonical events accepted into sessions."},
	)
	TrajectoryStates = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "istari", Subsystem: "intent", Name: "trajectory_states_total", Help: "Total intent states appended to trajectories."},
	)
	NormalizedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "istari", Subsystem: "gateway", Name: "normalized_events_total", Help: "Vendor events normalized, by schema."},
		[]string{"schema"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "istari", Subsystem: "http", Name: "requests_total", Help: "HTTP requests served, by route and status."},
		[]string{"route", "status"},
	)
)

func init() {
	_ = prometheus.Register(EventsIngested)
	_ = prometheus.Register(TrajectoryStates)
	_ = prometheus.Register(NormalizedEvents)
	_ = prometheus.Register(HTTPRequests)
}

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
