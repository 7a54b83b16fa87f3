package notificationdue

import (
	"context"
	"fmt"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/services"
	delivernotification "medreminder/internal/core/services/deliver_notification"
	"medreminder/internal/rabbitmq"
	"medreminder/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[delivernotification.Input, delivernotification.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[delivernotification.Input, delivernotification.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

// Consume starts delivering due notifications in background. Every message is
// acknowledged once, whether or not the delivery succeeded.
func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			ctx := context.Background()
			if err := handle(ctx, c.service, delivery.Body); err != nil {
				logging.Error(ctx, c.log, err, logging.Entry("messageId", delivery.MessageId))
			}
			ack(ctx, c.log, delivery)
		}
	}()
	return nil
}

func handle(
	ctx context.Context,
	service services.Service[delivernotification.Input, delivernotification.Result],
	body []byte,
) error {
	message := &schema.Notification{}
	if err := message.Unmarshal(body); err != nil {
		return fmt.Errorf("could not unmarshal notification: %w", err)
	}
	_, err := service.Run(ctx, delivernotification.Input{Notification: message.ToDomain()})
	return err
}

func ack(ctx context.Context, log logging.Logger, delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		log.Error(ctx, "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
