package deps

import (
	"context"
	"medreminder/internal/config"
	dl "medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/notification"
	drl "medreminder/internal/core/domain/rate_limiter"
	"medreminder/internal/core/domain/storage"
	"medreminder/internal/db/kv"
	"medreminder/internal/implementations/deliverer"
	"medreminder/internal/implementations/identity"
	kvstorage "medreminder/internal/implementations/kv_storage"
	"medreminder/internal/implementations/logging"
	medicationstore "medreminder/internal/implementations/medication_store"
	"medreminder/internal/implementations/notifier"
	ratelimiter "medreminder/internal/implementations/rate_limiter"
	"medreminder/internal/rabbitmq"
	notificationscheduler "medreminder/internal/rabbitmq/publishers/notification_scheduler"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

const localNotifierBufferSize = 64

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	KeyValue          storage.KeyValue
	MedicationStore   medication.Store
	IdentityGenerator *identity.UUID
	RateLimiter       drl.RateLimiter

	// LocalNotifier is set only when notifications are armed in process.
	LocalNotifier *notifier.Local
	Notifier      notification.Notifier
	Deliverer     notification.Deliverer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeRedisClient := deps.initRedisClient()
	closePgxPool := deps.initPgxPool()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()
	deps.initAwsConfig()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.IdentityGenerator = identity.NewUUID()
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.initKeyValue()
	deps.MedicationStore = medicationstore.New(deps.KeyValue, deps.Config.StorageKey)

	deps.initDeliverer()
	closeNotifier := deps.initNotifier()

	return deps, func() {
		closeFuncs := []func(){
			closeNotifier,
			closeSseServer,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	if !deps.Config.EmailEnabled() {
		return
	}
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsDebug)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	if deps.Config.StorageBackend != config.StoragePostgres {
		return func() {}
	}
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.Notifier != config.NotifierRabbitMQ {
		return func() {}
	}
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initKeyValue() {
	switch deps.Config.StorageBackend {
	case config.StoragePostgres:
		deps.KeyValue = kv.NewPgxKeyValue(deps.DB)
	default:
		deps.KeyValue = kvstorage.NewRedis(deps.Redis, "")
	}
	deps.Logger.Info(
		context.Background(),
		"Key-value storage initialized.",
		dl.Entry("backend", deps.Config.StorageBackend),
	)
}

func (deps *Deps) initDeliverer() {
	deliverers := []deliverer.Named{
		{Name: "log", Deliverer: deliverer.NewLog(deps.Logger)},
		{Name: "sse", Deliverer: deliverer.NewSSE(deps.SseServer)},
	}
	if deps.Config.TelegramEnabled() {
		deliverers = append(deliverers, deliverer.Named{
			Name: "telegram",
			Deliverer: deliverer.NewTelegram(
				deps.Config.TelegramBaseURL,
				deps.Config.TelegramBotToken,
				deps.Config.TelegramChatID,
				deps.Config.TelegramRequestTimeout,
			),
		})
	}
	if deps.Config.EmailEnabled() {
		deliverers = append(deliverers, deliverer.Named{
			Name:      "email",
			Deliverer: deliverer.NewEmail(deps.AwsConfig, deps.Config.AwsEmailSender, deps.Config.AwsEmailRecipient),
		})
	}
	deps.Deliverer = deliverer.NewMulti(deps.Logger, deliverers...)
}

func (deps *Deps) initNotifier() func() {
	permissions := notifier.NewPermissions(deps.KeyValue, notifier.DefaultPermissionKey, deps.Config.NotificationsAllowed)

	if deps.Config.Notifier == config.NotifierRabbitMQ {
		return deps.initRabbitmqNotifier(permissions)
	}

	local := notifier.NewLocal(deps.Logger, deps.Now, localNotifierBufferSize)
	deps.LocalNotifier = local
	deps.Notifier = notifier.New(deps.Logger, permissions, local, deps.IdentityGenerator)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down local notifier.")
		dropped := local.Close()
		deps.Logger.Info(context.Background(), "Local notifier shut down.", dl.Entry("dropped", dropped))
	}
}

func (deps *Deps) initRabbitmqNotifier(permissions *notifier.Permissions) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmq.DeclareDelayedQueue(
		rabbitmqChannel,
		deps.Config.RabbitmqDelayedExchange,
		deps.Config.RabbitmqNotificationDueQueue,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not declare RabbitMQ topology.", dl.Entry("err", err))
		panic(err)
	}

	backend := notificationscheduler.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqDelayedExchange,
		deps.Config.RabbitmqNotificationDueQueue,
		deps.Now,
	)
	deps.Notifier = notifier.New(deps.Logger, permissions, backend, deps.IdentityGenerator)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down notification scheduler.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Notification scheduler shut down.")
	}
}
