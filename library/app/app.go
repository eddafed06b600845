package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-catalog/library/config"
	"github.com/Astemirdum/library-catalog/library/internal/events"
	"github.com/Astemirdum/library-catalog/library/internal/handler"
	"github.com/Astemirdum/library-catalog/library/internal/repository"
	"github.com/Astemirdum/library-catalog/library/internal/scheduler"
	"github.com/Astemirdum/library-catalog/library/internal/server"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	"github.com/Astemirdum/library-catalog/library/migrations"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var publisher service.Publisher = events.NewLogPublisher(log)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		publisher = events.NewPublisher(events.NewEnqueuer(producer), circuit_breaker.New(cfg.CircuitBreaker), kafka.EventsTopic, log)
	}

	svc := service.NewService(repo, log,
		service.WithConfig(cfg.Service),
		service.WithPublisher(publisher),
	)

	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.LoansConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer consumer.Close()
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc, cfg.Service.OperationTimeout, log), cfg.Kafka.RetryBackoff, log, kafka.LoansTopic)
	}

	jobs, err := scheduler.New(cfg.Scheduler, svc, log)
	if err != nil {
		log.Fatal("scheduler.New", zap.Error(err))
	}
	jobs.Start()

	h := handler.New(svc, log, handler.Config{
		Auth: md.AuthConfig{
			JWTKey:        []byte(cfg.JWTKey),
			GatewaySecret: cfg.GatewaySecret,
		},
		ImportBodyLimit: cfg.Server.ImportBodyLimit,
		ImportTimeout:   cfg.Service.ImportTimeout,
	})
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	jobs.Stop(closeCtx)
	cancel()
	db.Close()
	log.Info("Graceful shutdown finished")
}
