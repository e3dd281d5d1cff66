package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/tsel-ticketmaster/tm-catalog/config"
	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/catalog"
	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/feed"
	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/resolver"
	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/ticket"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/applogger"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/cache"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/kafka"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/metrics"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/middleware"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/monitoring"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/postgresql"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/pubsub"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/redis"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/server"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/telemetry"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/validator"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	mon := monitoring.NewOpenTelemetry(
		c.Application.Name,
		c.Application.Environment,
		c.Observability.OTLPEndpoint,
	)

	mon.Start(ctx)

	if err := telemetry.InitSentry(c.Observability.SentryDSN, c.Application.Name, c.Application.Environment); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	validate := validator.Get()

	hc := &http.Client{Timeout: c.Upstream.Timeout}

	psqldb := postgresql.GetDatabase()
	if err := psqldb.Ping(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	publisher := pubsub.PublisherFromConfluentKafkaProducer(logger, kafka.NewProducer())

	var pageCache cache.Cache
	switch c.Cache.Backend {
	case "redis":
		rc := redis.GetClient()
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.WithContext(ctx).WithError(err).Error()
		}
		pageCache = cache.NewRedisCache(rc, c.Cache.TTL)
	default:
		pageCache = cache.NewMemoryCache(c.Cache.TTL)
	}

	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(c.Application.Name),
		middleware.HTTPResponseTraceInjection,
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// storefront
	feedRepo := feed.NewFeedRepository(c.Upstream.BaseURL, c.Upstream.APIKey, logger, hc, pageCache)

	sportRepo := resolver.NewSportRepository(logger, psqldb)
	tournamentRepo := resolver.NewTournamentRepository(logger, psqldb)
	eventRepo := resolver.NewEventRepository(logger, psqldb)
	resolverUseCase := resolver.NewResolverUseCase(resolver.ResolverUseCaseProperty{
		Logger:               logger,
		Timeout:              c.Application.Timeout,
		SportRepository:      sportRepo,
		TournamentRepository: tournamentRepo,
		EventRepository:      eventRepo,
	})
	resolver.InitHTTPHandler(router, resolverUseCase)

	catalogUseCase := catalog.NewCatalogUseCase(catalog.CatalogUseCaseProperty{
		Logger:         logger,
		Timeout:        c.Application.Timeout,
		Planner:        catalog.NewPlanner(c.Catalog.DefaultSports, c.Upstream.PageSize),
		FeedRepository: feedRepo,
		Publisher:      publisher,
		AnalyticsTopic: c.Kafka.AnalyticsTopic,
	})
	catalog.InitHTTPHandler(router, validate, catalogUseCase)

	ticketUseCase := ticket.NewTicketUseCase(ticket.TicketUseCaseProperty{
		Logger:         logger,
		Timeout:        c.Application.Timeout,
		FeedRepository: feedRepo,
	})
	ticket.InitHTTPHandler(router, ticketUseCase)

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins:   c.CORS.AllowedOrigins,
			AllowedMethods:   c.CORS.AllowedMethods,
			AllowedHeaders:   c.CORS.AllowedHeaders,
			ExposedHeaders:   c.CORS.ExposedHeaders,
			MaxAge:           c.CORS.MaxAge,
			AllowCredentials: c.CORS.AllowCredentials,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
	publisher.Close()
	psqldb.Close()
	mon.Stop(ctx)
}
