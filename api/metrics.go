/*
metrics.go - Prometheus instrumentation

PURPOSE:
  Process-level counters for the session API, exposed on GET /metrics.
  Command outcomes are labelled by command name and accepted/rejected so
  dashboards can spot balance problems (everyone broke at the same step).
*/
package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bakery_sessions_created_total",
		Help: "Sessions created since process start.",
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bakery_sessions_active",
		Help: "Sessions currently live.",
	})

	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakery_commands_total",
		Help: "Commands processed, by command and outcome.",
	}, []string{"command", "outcome"})
)

func observeCommand(command string, err error) {
	outcome := "accepted"
	if err != nil {
		outcome = "rejected"
	}
	commandsTotal.WithLabelValues(command, outcome).Inc()
}
