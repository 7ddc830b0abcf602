package notify

import (
	"context"
	"log/slog"
)

// Message is a composed notification. Recipient is a phone number or a
// master id depending on the channel.
type Message struct {
	Kind      string
	Recipient string
	Text      string
}

// Notifier delivers composed messages. The service ships only LogNotifier:
// messages are composed and recorded, never sent.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "notification composed",
		"kind", msg.Kind,
		"recipient", msg.Recipient,
		"text", msg.Text,
	)
	return nil
}
