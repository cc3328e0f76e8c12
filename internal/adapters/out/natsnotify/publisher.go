// Package natsnotify hands notifications to the mailer service over NATS
// Streaming. Delivery of the actual email is the mailer's job; publishing
// succeeds once the streaming server has acknowledged the message.
package natsnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	stan "github.com/nats-io/stan.go"
)

// Envelope is the message body on the notify subject.
type Envelope struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

type streamPublisher interface {
	Publish(subject string, data []byte) error
}

// Publisher is a ports.Notifier publishing to a NATS Streaming subject.
type Publisher struct {
	conn    streamPublisher
	subject string
	now     func() time.Time
}

// NewPublisher creates a Publisher on an open connection.
func NewPublisher(conn streamPublisher, subject string) *Publisher {
	return &Publisher{conn: conn, subject: subject, now: time.Now}
}

// Connect opens a NATS Streaming connection.
func Connect(clusterID, clientID, url string) (stan.Conn, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, errs.NewExternalServiceError("nats", err)
	}
	return sc, nil
}

// Notify publishes n and waits for the server acknowledgement. ctx is checked
// only before publishing.
func (p *Publisher) Notify(ctx context.Context, n ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(Envelope{
		Kind:    string(n.Kind),
		To:      n.To,
		Subject: n.Subject,
		Body:    n.Body,
		SentAt:  p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	if err = p.conn.Publish(p.subject, data); err != nil {
		return errs.NewExternalServiceError("nats", err)
	}
	return nil
}

// LogNotifier writes notifications to the log. It stands in for the mailer in
// local runs where no NATS server is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log-notifier")}
}

// Notify logs n and never fails.
func (l *LogNotifier) Notify(ctx context.Context, n ports.Notification) error {
	l.logger.InfoContext(ctx, "notification",
		"kind", n.Kind,
		"to", n.To,
		"subject", n.Subject,
		"body", n.Body,
	)
	return nil
}
