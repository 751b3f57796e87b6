package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Settlement counters, labelled by outcome so failed carts are visible
// next to committed ones.
var (
	SettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_settlements_total",
		Help: "Number of settlement attempts by outcome",
	}, []string{"outcome"})

	SettledAmountCents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_settled_amount_cents_total",
		Help: "Sum of committed invoice totals in cents",
	})
)

// Outcome label values
const (
	OutcomeCommitted  = "committed"
	OutcomeRolledBack = "rolled_back"
	OutcomeRejected   = "rejected"
)
