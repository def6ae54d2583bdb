package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "twitnet_command_runs_total",
		Help: "Total command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "twitnet_command_errors_total",
		Help: "Total command errors",
	}, []string{"command"})
	CommandDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "twitnet_command_duration_seconds",
		Help:    "Command duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	TweetsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "twitnet_tweets_loaded_total",
		Help: "Total tweets read from fixture files",
	})
)

func init() {
	prometheus.MustRegister(CommandRuns, CommandErrors, CommandDuration, TweetsLoaded)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }

// ObserveCommandDuration records a run duration
func ObserveCommandDuration(cmd string, start time.Time) {
	CommandDuration.WithLabelValues(cmd).Observe(time.Since(start).Seconds())
}

// AddTweetsLoaded counts tweets read by one load.
func AddTweetsLoaded(n int) { TweetsLoaded.Add(float64(n)) }
