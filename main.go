package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"bookings/internal/app"
	"bookings/internal/application/services"
	"bookings/internal/interfaces/events"
	"bookings/internal/observability"
	"bookings/internal/repository"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	watermillLogger := observability.NewWatermillLogger(logger)

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	var (
		publisher             message.Publisher
		subscriberConstructor events.SubscriberConstructor
		dashboardRepo         app.DashboardRepo
	)

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})

		pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: rdb,
		}, watermillLogger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create redis publisher")
		}

		publisher = pub
		subscriberConstructor = events.NewRedisSubscriberConstructor(rdb, watermillLogger)
		dashboardRepo = repository.NewRedisDashboardRepo(rdb)
	} else {
		pubSub := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermillLogger)

		publisher = pubSub
		subscriberConstructor = func(string) (message.Subscriber, error) {
			return pubSub, nil
		}
		dashboardRepo = repository.NewDashboardRepo()
	}

	var ledger services.Ledger
	if postgresURL := os.Getenv("POSTGRES_URL"); postgresURL != "" {
		db, err := sqlx.Open("postgres", postgresURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open postgres connection")
		}
		if err := repository.InitializeDBSchema(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize db schema")
		}

		ledger = repository.NewPostgresLedger(db)
	} else {
		ledger = repository.NewLedger()
	}

	a, err := app.NewApp(
		watermillLogger,
		logger,
		publisher,
		subscriberConstructor,
		ledger,
		dashboardRepo,
		httpAddr,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to assemble app")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("app stopped with error")
	}
}
