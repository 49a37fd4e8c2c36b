package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/partsyard/internal/config"
	repository "github.com/you-humble/partsyard/internal/repository/part"
	adminv1 "github.com/you-humble/partsyard/internal/transport/http/admin/v1"
	authv1 "github.com/you-humble/partsyard/internal/transport/http/auth/v1"
	catalogv1 "github.com/you-humble/partsyard/internal/transport/http/catalog/v1"
	"github.com/you-humble/partsyard/internal/transport/http/health"
	partsmw "github.com/you-humble/partsyard/internal/transport/http/middleware"
	"github.com/you-humble/partsyard/platform/closer"
	"github.com/you-humble/partsyard/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initIndexes,
		a.initBootstrap,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initIndexes(ctx context.Context) error {
	if err := repository.EnsureIndexes(ctx, a.di.PartsCollection(ctx)); err != nil {
		logger.Error(ctx, "failed to ensure part indexes", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initBootstrap(ctx context.Context) error {
	if !config.C().Mongo.Bootstrap() {
		return nil
	}

	staff := config.C().Business.Staff()
	addedBy := ""
	if len(staff) > 0 {
		addedBy = staff[0]
	}

	if err := repository.PartsBootstrap(ctx, a.di.PartsRepository(ctx), addedBy); err != nil {
		logger.Error(ctx, "failed to bootstrap parts", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		partsmw.RequestFields,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		partsmw.Metrics,
		partsmw.Guard(authv1.SessionCookie),
	)

	catalogv1.NewCatalogHandler(
		a.di.StorefrontService(ctx),
		a.di.BlobStore(ctx),
		cfg.Business.Phone(),
	).Register(r)

	authv1.NewAuthHandler(
		a.di.Identity(ctx),
		cfg.Auth.SessionTTL(),
		cfg.Auth.SecureCookie(),
	).Register(r)

	adminv1.NewAdminHandler(
		a.di.CatalogService(ctx),
		a.di.AdminService(ctx),
		a.di.Identity(ctx),
		cfg.Blob.MaxPhotoBytes(),
	).Register(r)

	r.HandleFunc("/health/live", health.Live)
	r.HandleFunc("/health/ready", health.Ready(map[string]health.Pinger{
		"mongo": func(ctx context.Context) error {
			return a.di.MongoDB(ctx).Ping(ctx, readpref.Primary())
		},
		"nats": func(ctx context.Context) error {
			if status := a.di.NATS(ctx).Status(); status != nats.CONNECTED {
				return fmt.Errorf("nats connection %s", status)
			}
			return nil
		},
	}))
	r.Handle("/metrics", promhttp.Handler())

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 partsyard server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(egCtx, "🛑 Server shutdown...")

		sdCtx, cancel := context.WithTimeout(
			context.Background(),
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
