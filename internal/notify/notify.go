package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"barbershop/internal/metrics"
)

var ErrNoRecipient = errors.New("destinatario no configurado")

// Message is a channel-agnostic notification. To is only used by e-mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Channel() string
	Send(ctx context.Context, msg Message) error
}

// Dispatcher fans a message out to every configured notifier in the
// background. Delivery errors are logged and counted, never returned.
type Dispatcher struct {
	notifiers []Notifier
	timeout   time.Duration
	logger    *zap.Logger
	metrics   *metrics.Metrics
	wg        sync.WaitGroup
}

func NewDispatcher(logger *zap.Logger, m *metrics.Metrics, timeout time.Duration, notifiers ...Notifier) *Dispatcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Dispatcher{
		notifiers: notifiers,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if len(d.notifiers) == 0 {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		d.deliver(ctx, msg)
	}()
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	for _, n := range d.notifiers {
		err := n.Send(ctx, msg)
		d.metrics.NotificationResult(n.Channel(), err)
		if err != nil {
			d.logger.Error("error al enviar la notificación",
				zap.String("channel", n.Channel()),
				zap.String("subject", msg.Subject),
				zap.Error(err))
			continue
		}
		d.logger.Debug("notificación enviada", zap.String("channel", n.Channel()))
	}
}

// Wait blocks until every in-flight dispatch has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// LogNotifier writes notifications to the application log. It is the
// fallback channel when neither SMTP nor Telegram is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Channel() string {
	return "log"
}

func (n *LogNotifier) Send(_ context.Context, msg Message) error {
	n.logger.Info("notificación",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body))
	return nil
}
