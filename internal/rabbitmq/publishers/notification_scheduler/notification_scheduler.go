package notificationscheduler

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/rabbitmq/schema"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ arms one-shot notifications as messages delayed by the
// x-delayed-message exchange until their fire time.
type RabbitMQ struct {
	log        logging.Logger
	channel    publisher
	exchange   string
	routingKey string
	now        func() time.Time
}

func NewRabbitMQ(
	log logging.Logger,
	channel publisher,
	exchange string,
	routingKey string,
	now func() time.Time,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey, now: now}
}

func (s *RabbitMQ) Schedule(ctx context.Context, n notification.Notification) error {
	message := schema.FromDomain(n)
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	delay := Delay(s.now(), n.FireAt)
	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		Headers:      amqp091.Table{"x-delay": delay.Milliseconds()},
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    string(n.Handle),
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("handle", n.Handle))
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("handle", n.Handle),
		logging.Entry("delay", delay),
	)
	return nil
}

// Delay is the time left until fireAt. It is never negative.
func Delay(now time.Time, fireAt time.Time) time.Duration {
	delay := fireAt.Sub(now)
	if delay < 0 {
		return 0
	}
	return delay
}
