package workers

import (
	"context"
	"sync"
	"time"

	"github.com/vnshop/identity/internal/adapter"
	"github.com/vnshop/identity/internal/logger"
)

// sendTimeout bounds a single delivery attempt inside the worker.
const sendTimeout = 30 * time.Second

type confirmationMail struct {
	toEmail string
	link    string
}

// MailDispatcher is the background queue decoupling registration from
// confirmation-mail delivery. Enqueue never blocks the caller; delivery
// failures are logged and counted, never surfaced to the registering
// user.
type MailDispatcher struct {
	sender adapter.MailSender
	logger *logger.Logger

	queue chan confirmationMail

	closeOnce sync.Once
	done      chan struct{}
}

// NewMailDispatcher constructs a [MailDispatcher] with the given queue
// capacity. Run must be started (typically via [Workers.Run]) before
// enqueued mail is delivered.
func NewMailDispatcher(sender adapter.MailSender, queueSize int, log *logger.Logger) *MailDispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	return &MailDispatcher{
		sender: sender,
		logger: log,
		queue:  make(chan confirmationMail, queueSize),
		done:   make(chan struct{}),
	}
}

// Enqueue hands a confirmation mail to the background queue and returns
// immediately. Returns false when the queue is full; the mail is dropped,
// logged, and counted, and the registration that triggered it still
// succeeds.
func (d *MailDispatcher) Enqueue(toEmail, verificationLink string) bool {
	select {
	case d.queue <- confirmationMail{toEmail: toEmail, link: verificationLink}:
		mailEnqueued.Inc()
		return true
	default:
		mailDropped.Inc()
		d.logger.Error().Str("to", toEmail).Msg("confirmation mail queue full, dropping mail")
		return false
	}
}

// Run consumes the queue until Shutdown closes it. It blocks and is meant
// to be started on its own goroutine.
func (d *MailDispatcher) Run() {
	defer close(d.done)

	for mail := range d.queue {
		d.deliver(mail)
	}
}

func (d *MailDispatcher) deliver(mail confirmationMail) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.SendConfirmation(ctx, mail.toEmail, mail.link); err != nil {
		mailFailed.Inc()
		d.logger.Err(err).Str("to", mail.toEmail).Msg("confirmation mail delivery failed")
		return
	}

	mailSent.Inc()
	d.logger.Debug().Str("to", mail.toEmail).Msg("confirmation mail delivered")
}

// Shutdown stops intake and waits for the worker to drain the queue, or
// for ctx to expire, whichever comes first.
func (d *MailDispatcher) Shutdown(ctx context.Context) {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
	case <-ctx.Done():
		d.logger.Warn().Msg("mail dispatcher shutdown timed out before queue drained")
	}
}
