package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "yup.notifications"
	ExchangeKind = "topic"
)

// RoutingKey is the topic a notification is published under.
func RoutingKey(kind domain.NotificationKind) string {
	return "notification." + string(kind)
}

// Publisher is the part of *amqp.Channel the AMQPNotifier needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier hands notifications to downstream workers (the SMS gateway)
// through a topic exchange.
type AMQPNotifier struct {
	pub      Publisher
	channels []domain.Channel

	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialAMQP connects to url, declares the exchange and returns a notifier
// for the given channels (SMS when none are given).
func DialAMQP(url string, channels ...domain.Channel) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	n := NewAMQPNotifier(ch, channels...)
	n.conn, n.ch = conn, ch
	return n, nil
}

func NewAMQPNotifier(pub Publisher, channels ...domain.Channel) *AMQPNotifier {
	if len(channels) == 0 {
		channels = []domain.Channel{domain.ChannelSMS}
	}
	return &AMQPNotifier{pub: pub, channels: channels}
}

func (a *AMQPNotifier) Notify(ctx context.Context, n domain.Notification) error {
	if !slices.Contains(a.channels, n.Channel) {
		return nil
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = a.pub.PublishWithContext(ctx, ExchangeName, RoutingKey(n.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(n.Kind),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", RoutingKey(n.Kind), err)
	}
	return nil
}

// Close releases the broker connection when the notifier owns one.
func (a *AMQPNotifier) Close() error {
	if a.ch != nil {
		_ = a.ch.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
