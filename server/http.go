package server

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"job-dashboard/config"
	"job-dashboard/constant"
	jobHandler "job-dashboard/handler"
	"job-dashboard/pkg/rabbitmq"
	"job-dashboard/pkg/storage"
	"job-dashboard/repository"
	"job-dashboard/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func RunHttp(cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(setupLogger(cfg), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zerolog.Ctx(ctx).Info().Str("env", cfg.App.Environment).Bool("isProduction", cfg.App.Environment == constant.EnvironmentProduction.String()).Send()
	if cfg.App.Environment == constant.EnvironmentProduction.String() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := repository.Open(cfg.DB, cfg.App.Environment == constant.EnvironmentDevelop.String())
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to open database")
		return
	}
	repo, err := repository.NewRepo(db)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to set up repository")
		return
	}

	var signer service.ThumbnailSigner
	if cfg.Storage != nil {
		signer = storage.NewThumbnailSigner(cfg.Storage, cfg.MinIOBucket, cfg.Jobs.ThumbnailTTL)
	}

	// The connection outlives the signal so consumers can requeue in-flight
	// messages and the publisher can close its channel first.
	connCtx, closeConn := context.WithCancel(context.WithoutCancel(ctx))
	defer closeConn()

	// The API keeps serving without RabbitMQ; only notifications are lost.
	var publisher service.EventPublisher
	var amqpPublisher *rabbitmq.Publisher
	conn, err := config.NewRabbitMQConn(connCtx, cfg.Queue)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("NewRabbitMQConn")
	} else {
		amqpPublisher, err = rabbitmq.NewPublisher(conn, cfg.Queue)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("NewPublisher")
		} else {
			publisher = amqpPublisher
		}
	}

	serviceDeps := jobHandler.ServiceDependencies{
		JobService:          service.NewJobService(repo, publisher, signer, cfg.Jobs),
		StatusService:       service.NewStatusService(repo, signer),
		PreferenceService:   service.NewPreferenceService(repo),
		CommentService:      service.NewCommentService(repo),
		NotificationService: service.NewNotificationService(repo),
		LookupService:       service.NewLookupService(repo),
	}

	consumerDone := make(chan struct{})
	if conn != nil {
		go func() {
			defer close(consumerDone)
			runConsumer(ctx, conn, cfg, serviceDeps)
		}()
	} else {
		close(consumerDone)
	}

	r := NewRouter(*zerolog.Ctx(ctx), serviceDeps)

	handler := http.Server{
		Handler:           r,
		Addr:              fmt.Sprintf(":%s", cfg.Server.HttpPort),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zerolog.Ctx(ctx).Info().Str("env", cfg.App.Environment).Str("addr", handler.Addr).Msg("start http server")
		if err := handler.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zerolog.Ctx(ctx).Error().Str("env", cfg.App.Environment).Msg(err.Error())
		}
	}()

	<-ctx.Done()
	zerolog.Ctx(ctx).Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer shutdownCancel()
	if err := handler.Shutdown(shutdownCtx); err != nil {
		zerolog.Ctx(ctx).Error().Str("env", cfg.App.Environment).Msg(err.Error())
	}

	<-consumerDone
	if amqpPublisher != nil {
		if err := amqpPublisher.Close(); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to close publisher")
		}
	}
	closeConn()

	zerolog.Ctx(ctx).Info().Str("env", cfg.App.Environment).Msg("server shutdown")
}

func runConsumer(ctx context.Context, conn *amqp.Connection, cfg *config.Config, deps jobHandler.ServiceDependencies) {
	binding := rabbitmq.Binding{
		Queue: cfg.Queue.QueueName,
		RoutingKeys: []string{
			constant.EventJobCreated.String(),
			constant.EventJobStatusChanged.String(),
			constant.EventJobMembersChanged.String(),
		},
	}
	notificationConsumer := rabbitmq.NewConsumer(conn, cfg.Queue, binding, cfg.Server.Workers, jobHandler.JobEventHandler)
	err := notificationConsumer.Consume(ctx, deps)
	if err != nil && !errors.Is(err, context.Canceled) {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Notification consumer error")
	}
}

func setupLogger(cfg *config.Config) context.Context {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.App.Environment == constant.EnvironmentDevelop.String() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Log to standard output
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	return ctx
}
