// Package metrics defines and registers all custom Prometheus metrics for the
// Just Dogs API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "justdogs"

// ── Identity metrics ──────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "ok" or "failed"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SignUpsTotal counts completed registrations.
// Label:
//   - role: "admin", "trainer", or "parent"
var SignUpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ups_total",
		Help:      "Total number of completed registrations, by role.",
	},
	[]string{"role"},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// MessagesSentTotal counts stored messages.
// Label:
//   - kind: "direct" or "announcement"
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages stored, by kind.",
	},
	[]string{"kind"},
)

// MessagesReadTotal counts first-time read marks. Re-marking an already-read
// message does not increment.
var MessagesReadTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_read_total",
		Help:      "Total number of messages marked read for the first time.",
	},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - booking_type: "training", "daycare", "behavioral", or "socialization"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by booking type.",
	},
	[]string{"booking_type"},
)
