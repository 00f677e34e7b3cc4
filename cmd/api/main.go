package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DioGolang/GoEvents/configs"
	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/application/usecase/customer"
	"github.com/DioGolang/GoEvents/internal/application/usecase/order"
	"github.com/DioGolang/GoEvents/internal/application/usecase/product"
	"github.com/DioGolang/GoEvents/internal/domain/event"
	eventhandler "github.com/DioGolang/GoEvents/internal/domain/event/handler"
	"github.com/DioGolang/GoEvents/internal/infra/database"
	infraevent "github.com/DioGolang/GoEvents/internal/infra/event"
	"github.com/DioGolang/GoEvents/internal/infra/mail"
	"github.com/DioGolang/GoEvents/internal/infra/memory"
	"github.com/DioGolang/GoEvents/internal/infra/web"
	"github.com/DioGolang/GoEvents/internal/infra/web/handler"
	appmiddleware "github.com/DioGolang/GoEvents/internal/infra/web/middleware"
	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
	"github.com/DioGolang/GoEvents/pkg/metrics"
	pkgotel "github.com/DioGolang/GoEvents/pkg/otel"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(logger.Config{
		ServiceName: config.ServiceName,
		Environment: config.Environment,
		Level:       config.LogLevel,
	})
	if err != nil {
		panic(err)
	}

	if err := run(config, log); err != nil {
		log.Error(context.Background(), "server stopped with error", logger.WithError(err))
		os.Exit(1)
	}
}

func run(config *configs.Conf, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.OtelCollectorAddr != "" {
		shutdown, err := pkgotel.InitProvider(ctx, pkgotel.ProviderConfig{
			ServiceName:   config.ServiceName,
			Environment:   config.Environment,
			CollectorAddr: config.OtelCollectorAddr,
			SampleRatio:   config.OtelSampleRatio,
		})
		if err != nil {
			return err
		}
		defer shutdown()
	}
	tracer := otel.Tracer(config.ServiceName)

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, config.ServiceName)

	var healthOpts []handler.HealthOption
	var uow outbound.UnitOfWork
	if config.DBDriver == "memory" {
		log.Warn(ctx, "using in-memory store, data is lost on restart")
		uow = memory.NewStore()
	} else {
		db, err := openDatabase(ctx, config)
		if err != nil {
			return err
		}
		defer db.Close()
		uow = database.NewUnitOfWork(db)
		healthOpts = append(healthOpts, handler.WithPostgres(db))
	}

	var mailer eventhandler.Mailer = eventhandler.NewLogMailer(log)
	if config.SMTPHost != "" {
		smtpMailer := mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			Username: config.SMTPUsername,
			Password: config.SMTPPassword,
			From:     config.MailFrom,
			To:       config.MailTo,
		})
		mailer = smtpMailer
		healthOpts = append(healthOpts, handler.WithCheck("smtp", 3*time.Second, true, smtpMailer.Ping))
	}

	dispatcher := infraevent.NewInstrumentedDispatcher(events.NewEventDispatcher(), log, m, tracer)
	dispatcher.Register(event.CustomerCreatedEventName,
		infraevent.Instrument(tracer, log, m, "ConsoleLogFirstHandler", eventhandler.NewConsoleLogFirstHandler(log)))
	dispatcher.Register(event.CustomerCreatedEventName,
		infraevent.Instrument(tracer, log, m, "ConsoleLogSecondHandler", eventhandler.NewConsoleLogSecondHandler(log)))
	dispatcher.Register(event.ProductCreatedEventName,
		infraevent.Instrument(tracer, log, m, "SendEmailWhenProductIsCreatedHandler", eventhandler.NewSendEmailWhenProductIsCreatedHandler(mailer)))

	addressChanged := infraevent.Instrument(tracer, log, m, "ConsoleLogAddressChangedHandler",
		eventhandler.NewConsoleLogAddressChangedHandler(log))

	createCustomer := &customer.CreateCustomerMetricsDecorator{
		Next:    customer.NewCreateCustomerUseCase(uow, dispatcher),
		Metrics: m,
	}
	changeAddress := &customer.ChangeAddressMetricsDecorator{
		Next:    customer.NewChangeAddressUseCase(uow, addressChanged),
		Metrics: m,
	}
	createProduct := &product.CreateProductMetricsDecorator{
		Next:    product.NewCreateProductUseCase(uow, dispatcher),
		Metrics: m,
	}
	placeOrder := &order.PlaceOrderMetricsDecorator{
		Next:    order.NewPlaceOrderUseCase(uow),
		Metrics: m,
	}

	healthHandler, err := handler.NewHealthHandler(config.ServiceName, healthOpts...)
	if err != nil {
		return err
	}

	router := web.NewRouter(web.RouterConfig{
		ServiceName: config.ServiceName,
		Logger:      log,
		Metrics:     m,
		Gatherer:    registry,
		RateLimiter: appmiddleware.NewRateLimiter(ctx, appmiddleware.RateLimiterConfig{
			RequestsPerSecond: config.RateLimitRPS,
			Burst:             config.RateLimitBurst,
			CleanupInterval:   time.Minute,
			ClientTimeout:     3 * time.Minute,
		}),
		HealthHandler:   healthHandler,
		CustomerHandler: handler.NewCustomerHandler(createCustomer, changeAddress),
		ProductHandler:  handler.NewProductHandler(createProduct),
		OrderHandler:    handler.NewOrderHandler(placeOrder),
	})

	server := &http.Server{
		Addr:              ":" + config.WebServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gCtx, "server running", logger.String("port", config.WebServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info(context.Background(), "shutting down server")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutCtx)
	})

	return g.Wait()
}

func openDatabase(ctx context.Context, config *configs.Conf) (*sql.DB, error) {
	db, err := sql.Open(config.DBDriver, config.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
