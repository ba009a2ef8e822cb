package main

import (
	"context"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fieldops-server/api"
	"github.com/carson-networks/fieldops-server/internal/apiclient"
	"github.com/carson-networks/fieldops-server/internal/config"
	"github.com/carson-networks/fieldops-server/internal/export"
	"github.com/carson-networks/fieldops-server/internal/logging"
	"github.com/carson-networks/fieldops-server/internal/metrics"
	"github.com/carson-networks/fieldops-server/internal/operator"
	"github.com/carson-networks/fieldops-server/internal/operator/actions"
	"github.com/carson-networks/fieldops-server/internal/scheduler"
	"github.com/carson-networks/fieldops-server/internal/service"
	"github.com/carson-networks/fieldops-server/internal/session"
	"github.com/carson-networks/fieldops-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("fieldops-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()

	client, err := apiclient.New(apiclient.Config{
		BaseURL: envConfig.APIBaseURL,
		Timeout: envConfig.HTTPTimeout,
	}, newSessionStore(envConfig, logger), logger, collector)
	if err != nil {
		logger.WithError(err).Fatal("apiclient.New")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.DB.Close()

	sinks := map[string]export.Sink{
		service.DestinationLocal: export.NewDirSink(envConfig.ExportDir),
	}
	if envConfig.ExportS3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(envConfig.ExportS3Region))
		if err != nil {
			logger.WithError(err).Fatal("awsconfig.LoadDefaultConfig")
			return
		}
		sinks["s3"] = export.NewS3Sink(s3.NewFromConfig(awsCfg), envConfig.ExportS3Bucket, envConfig.ExportS3Prefix)
	}
	destinations := make([]string, 0, len(sinks))
	for name := range sinks {
		destinations = append(destinations, name)
	}

	deps := &actions.Dependencies{
		Sinks:   sinks,
		Exports: dbStorage.Exports,
		Metrics: collector,
		Logger:  logger,
	}
	delegator := operator.NewOperatorDelegator(deps, envConfig.Workers)

	svc := service.NewService(client, dbStorage, delegator, destinations, envConfig.LoanLimitMultiplier, logger)
	deps.Reports = svc.Reports

	delegator.Start()
	defer delegator.Stop()

	schedules, err := scheduler.Load(envConfig.SchedulesPath)
	if err != nil {
		logger.WithError(err).Fatal("scheduler.Load")
		return
	}
	cronScheduler, err := scheduler.New(schedules, svc.Exports, logger)
	if err != nil {
		logger.WithError(err).Fatal("scheduler.New")
		return
	}
	cronScheduler.Start()
	defer cronScheduler.Stop(context.Background())
	logger.WithField("schedules", cronScheduler.Len()).Info("Scheduler.started")

	if envConfig.AdminToken == "" {
		logger.Warn("Session.adminToken unset, session operations disabled")
	}

	httpRest := api.Rest{
		Logger:     logger,
		Port:       envConfig.Port,
		Storage:    dbStorage,
		Service:    svc,
		Client:     client,
		AdminToken: envConfig.AdminToken,
		Metrics:    collector,
	}
	httpRest.Serve(ctx)
}

// newSessionStore holds the single service-account session. Redis shares it
// between replicas; without Redis it lives in a local file.
func newSessionStore(env *config.Config, logger *logrus.Logger) session.Store {
	if env.RedisAddress == "" {
		return session.NewFileStore(env.SessionFile)
	}

	logger.WithField("address", env.RedisAddress).Info("Session.redis")
	return session.NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     env.RedisAddress,
		Password: env.RedisPassword,
	}), "default")
}
