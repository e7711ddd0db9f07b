package app

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"bookings/internal/application/services"
	"bookings/internal/interfaces/events"
	"bookings/internal/interfaces/http"
)

// DashboardRepo is what the app needs from a dashboard store: the projection
// handlers write it, the query gateway reads it.
type DashboardRepo interface {
	events.DashboardRepo
	services.DashboardReader
}

type App struct {
	logger zerolog.Logger
	router *message.Router
	srv    *http.Server
}

// NewApp assembles the core in dependency order: ledger, command processor
// and report generator, event bus, dashboard projection, query gateway, HTTP
// server. All collaborators arrive as constructor arguments; there is no
// ambient state.
func NewApp(
	watermillLogger watermill.LoggerAdapter,
	logger zerolog.Logger,
	publisher message.Publisher,
	subscriberConstructor events.SubscriberConstructor,
	ledger services.Ledger,
	dashboardRepo DashboardRepo,
	httpAddr string,
) (*App, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware(logger))
	router.AddMiddleware(events.LoggingMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	eventBus, err := events.NewEventBus(publisher, watermillLogger)
	if err != nil {
		return nil, err
	}

	bookingService := services.NewBookingService(ledger, eventBus)
	reportService := services.NewReportService(ledger)
	queryService := services.NewQueryService(ledger, dashboardRepo, reportService)

	processor, err := cqrs.NewEventGroupProcessorWithConfig(
		router,
		events.NewEventProcessorConfig(subscriberConstructor, watermillLogger),
	)
	if err != nil {
		return nil, err
	}

	handler := events.NewHandler(dashboardRepo, ledger)
	err = processor.AddHandlersGroup(
		"dashboard",
		handler.BookingCreatedHandler(),
		handler.BookingDeletedHandler(),
	)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := http.NewServer(
		e,
		logger,
		httpAddr,
		bookingService,
		queryService,
		router.IsRunning,
	)

	return &App{
		logger: logger,
		router: router,
		srv:    srv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")

		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("router is running")

		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		<-ctx.Done()

		err := a.srv.Stop(context.Background())
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	return g.Wait()
}
