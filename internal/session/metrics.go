package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "console_client",
		Name:      "logins_total",
		Help:      "Successful logins.",
	})

	teardownsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "console_client",
		Name:      "session_teardowns_total",
		Help:      "Sessions torn down by an unauthorized response.",
	})
)
