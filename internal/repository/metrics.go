package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txCommits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportive",
		Subsystem: "repository",
		Name:      "tx_commits_total",
		Help:      "Units of work that committed successfully.",
	})
	txRollbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportive",
		Subsystem: "repository",
		Name:      "tx_rollbacks_total",
		Help:      "Units of work that were rolled back.",
	})
)
