package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/notify"
	"github.com/aussiebroadwan/yup/pkg/slogx"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func rsvpNotification(ch domain.Channel, to string) domain.Notification {
	return domain.Notification{
		Kind:    domain.KindRSVPReceived,
		Channel: ch,
		To:      to,
		Subject: "New RSVP for Launch Party",
		Body:    "Sam said Yup (2 guests)",
		EventID: "01EVENT",
	}
}

func TestMultiJoinsErrors(t *testing.T) {
	errA := errors.New("smtp down")
	errB := errors.New("broker down")
	calls := 0

	m := notify.Multi{
		notify.Func(func(context.Context, domain.Notification) error { calls++; return errA }),
		nil,
		notify.Func(func(context.Context, domain.Notification) error { calls++; return nil }),
		notify.Func(func(context.Context, domain.Notification) error { calls++; return errB }),
	}

	err := m.Notify(context.Background(), rsvpNotification(domain.ChannelEmail, "host@example.com"))
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.Equal(t, 3, calls)

	require.NoError(t, notify.Multi{notify.Nop}.Notify(context.Background(), domain.Notification{}))
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := slogx.WithContext(context.Background(), logger)

	err := notify.LogNotifier{Level: slog.LevelInfo}.Notify(ctx, rsvpNotification(domain.ChannelSMS, "+61400000000"))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"kind":"rsvp.received"`)
	require.Contains(t, buf.String(), `"channel":"sms"`)
}

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestEmailNotifier(t *testing.T) {
	s := &fakeSender{}
	n := notify.NewEmailNotifierWithSender(s, "yup@example.com")

	require.NoError(t, n.Notify(context.Background(), rsvpNotification(domain.ChannelEmail, "host@example.com")))
	require.Len(t, s.sent, 1)
	require.Equal(t, []string{"host@example.com"}, s.sent[0].GetHeader("To"))
	require.Equal(t, []string{"yup@example.com"}, s.sent[0].GetHeader("From"))
	require.Equal(t, []string{"New RSVP for Launch Party"}, s.sent[0].GetHeader("Subject"))

	// Other channels are ignored.
	require.NoError(t, n.Notify(context.Background(), rsvpNotification(domain.ChannelSMS, "+61400000000")))
	require.Len(t, s.sent, 1)

	s.err = errors.New("connection refused")
	err := n.Notify(context.Background(), rsvpNotification(domain.ChannelEmail, "host@example.com"))
	require.ErrorIs(t, err, s.err)
}

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakePublisher struct {
	out []published
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.out = append(f.out, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestAMQPNotifier(t *testing.T) {
	pub := &fakePublisher{}
	n := notify.NewAMQPNotifier(pub)

	require.NoError(t, n.Notify(context.Background(), domain.Notification{
		Kind:    domain.KindPhoneVerification,
		Channel: domain.ChannelSMS,
		To:      "+61400000000",
		Body:    "Your Yup code is 123456",
	}))
	require.NoError(t, n.Notify(context.Background(), rsvpNotification(domain.ChannelEmail, "host@example.com")))

	require.Len(t, pub.out, 1)
	require.Equal(t, notify.ExchangeName, pub.out[0].exchange)
	require.Equal(t, "notification.phone.verification", pub.out[0].key)
	require.Equal(t, "application/json", pub.out[0].msg.ContentType)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(pub.out[0].msg.Body, &got))
	require.Equal(t, "+61400000000", got.To)

	require.NoError(t, n.Close())
}
