package consumers

import (
	"context"
	"medreminder/internal/app/deps"
	"medreminder/internal/app/services"
	dl "medreminder/internal/core/domain/logging"
	delivernotification "medreminder/internal/core/services/deliver_notification"
	notificationdue "medreminder/internal/rabbitmq/consumers/notification_due"
	"sync"
)

func initNotificationDueConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqNotificationDueQueue
	consumer := notificationdue.New(deps.Logger, rabbitmqChannel, queue, services.DeliverNotification)
	if err = consumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

// initLocalNotificationConsumer delivers notifications fired by in-process
// timers until the local notifier is closed.
func initLocalNotificationConsumer(deps *deps.Deps, services *services.Services) func() {
	local := deps.LocalNotifier
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case n := <-local.Due():
				ctx := context.Background()
				_, err := services.DeliverNotification.Run(ctx, delivernotification.Input{Notification: n})
				if err != nil {
					dl.Error(ctx, deps.Logger, err, dl.Entry("handle", n.Handle))
				}
			case <-local.Done():
				return
			}
		}
	}()

	deps.Logger.Info(context.Background(), "Local notification consumer has started.")
	return func() {
		dropped := local.Close()
		wg.Wait()
		deps.Logger.Info(context.Background(), "Local notification consumer stopped.", dl.Entry("dropped", dropped))
	}
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	if deps.LocalNotifier != nil {
		return initLocalNotificationConsumer(deps, services)
	}
	return initNotificationDueConsumer(deps, services)
}
