package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "unitcalc/internal/api/http"
	calcController "unitcalc/internal/api/http/controllers/calculator"
	convController "unitcalc/internal/api/http/controllers/converter"
	"unitcalc/internal/api/http/controllers/system"
	"unitcalc/internal/infrastructure/click"
	"unitcalc/internal/infrastructure/kafka"
	"unitcalc/internal/infrastructure/mongo"
	"unitcalc/internal/infrastructure/pg"
	"unitcalc/internal/infrastructure/redis"
	"unitcalc/internal/pkg/logger"
	"unitcalc/internal/ports"
	calcUsecase "unitcalc/internal/usecase/calculator"
	convUsecase "unitcalc/internal/usecase/converter"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище истории, Redis, Kafka и ClickHouse, инициализирует
// зависимости и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := a.historyRepo(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	writer := click.NewCalculationWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	calcUC := calcUsecase.New(repo, producer, writer, log)
	convUC := convUsecase.New(redis.NewCache(rdb, log), log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, calcUC, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		calcController.New(calcUC, log),
		convController.New(convUC, log))

	addr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", addr, "history_backend", a.cfg.HistoryBackend)

	return srv.Start(ctx)
}

// historyRepo подключает выбранный конфигом бэкенд истории и возвращает
// репозиторий вместе с функцией закрытия соединения.
func (a *App) historyRepo(ctx context.Context, log *slog.Logger) (ports.IHistoryRepository, func(), error) {
	switch a.cfg.HistoryBackend {
	case HistoryBackendMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return mongo.NewCalculationRepo(client, log), closeFn, nil

	case HistoryBackendPostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		closeFn := func() { _ = db.Close() }
		return pg.NewCalculationRepo(db, log), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown history backend: %s", a.cfg.HistoryBackend)
}
