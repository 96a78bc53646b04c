package workers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration success is decoupled from mail deliverability, so dispatch
// failures never surface to callers. These counters are the observable
// hook for that silent path.
var (
	mailEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_confirmation_mail_enqueued_total",
		Help: "Confirmation mails accepted onto the dispatch queue.",
	})

	mailDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_confirmation_mail_dropped_total",
		Help: "Confirmation mails dropped because the dispatch queue was full.",
	})

	mailSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_confirmation_mail_sent_total",
		Help: "Confirmation mails handed to the mail transport successfully.",
	})

	mailFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_confirmation_mail_failed_total",
		Help: "Confirmation mail deliveries that failed at the transport.",
	})
)
