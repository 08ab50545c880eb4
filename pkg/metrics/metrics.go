package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsAccepted 成功寫入的報名數
	RegistrationsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_registrations_accepted_total",
		Help: "Number of registrations successfully persisted.",
	})

	// RegistrationsRejected 被拒絕的報名數，依原因分類
	RegistrationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_registrations_rejected_total",
		Help: "Number of registrations rejected, by reason.",
	}, []string{"reason"})

	ConfirmationMailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confirmation_mails_sent_total",
		Help: "Number of confirmation emails accepted by the relay.",
	})

	ConfirmationMailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confirmation_mails_failed_total",
		Help: "Number of confirmation emails that failed to send.",
	})
)

const (
	ReasonEventNotFound = "event_not_found"
	ReasonEventFull     = "event_full"
)
