// Package metrics defines and registers all custom Prometheus metrics for
// the FruitMart shop API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fruitmart"

// MembersRegisteredTotal counts successful member registrations.
var MembersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_registered_total",
		Help:      "Total number of members successfully registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CartItemsAddedTotal counts add-to-cart operations.
var CartItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_added_total",
		Help:      "Total number of items added to carts.",
	},
)

// CartUpdatesTotal counts submitted quantity updates.
// Label:
//   - outcome: "applied" (quantity replaced), "removed" (zero quantity),
//     or "skipped" (not a non-negative integer)
var CartUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_updates_total",
		Help:      "Total number of submitted cart quantity updates, labelled by outcome.",
	},
	[]string{"outcome"},
)

// CheckoutsTotal counts checkout summary views.
var CheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout summaries served.",
	},
)

// CheckoutTotalValue observes the cart total at checkout, in catalog
// currency units.
var CheckoutTotalValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_total_value",
		Help:      "Distribution of cart totals at checkout.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10), // 10 .. 5120
	},
)
