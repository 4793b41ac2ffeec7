package main

import (
	"context"
	"log/slog"
	"os"

	"fittrack/config"
	"fittrack/internal/delivery"
	"fittrack/internal/delivery/http"
	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/router/handler"
	"fittrack/internal/domain/service"
	"fittrack/internal/infra/auth"
	logs "fittrack/internal/infra/log"
	"fittrack/internal/infra/mail"
	"fittrack/internal/infra/persistence/postgres"
	"fittrack/internal/infra/session"
	"fittrack/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newRedisClient,
	)
}

func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newSessionManager,
			newRecoveryNotifier,
		),
	)
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

func newSessionManager(client *redis.Client, cfg *config.Config) service.SessionManager {
	return session.NewRedisManager(client, cfg.Session.TTL)
}

func newRecoveryNotifier(cfg *config.Config) service.RecoveryNotifier {
	return mail.NewSMTPNotifier(cfg.SMTP)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
