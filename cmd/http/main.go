package main

import (
	"claimgate-service/internal/app/config"
	"claimgate-service/internal/app/delivery/http/middlewares"
	"claimgate-service/internal/app/delivery/http/routers"
	"claimgate-service/internal/app/drivers/database"
	"claimgate-service/internal/app/drivers/logger"
	"claimgate-service/internal/app/drivers/messaging"
	"claimgate-service/internal/app/drivers/storage"
	"claimgate-service/internal/app/services/claims"
	"claimgate-service/internal/app/services/remittances"
	"claimgate-service/internal/app/services/shared/gateway"
	"claimgate-service/internal/app/services/shared/redis"
	"claimgate-service/internal/app/services/shared/remitqueue"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error closing dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) *config.Bootstrap {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Payer gateway
	claimGateway := gateway.NewMinioGateway(bootstrap.Minio, bootstrap.Logger, bootstrap.InternalConfig)

	// Remittance intake queue
	intakeQueue, err := remitqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Remittance.IntakeQueue,
		bootstrap.InternalConfig.Remittance.DeadLetterQueue,
		bootstrap.InternalConfig.Remittance.MaxQueuePerTick,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize remittance intake queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Claim
	claimMongoRepository := claims.NewClaimMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	claimUsecase := claims.NewClaimUsecase(bootstrap.Logger, claimMongoRepository, claimGateway, bootstrap.InternalConfig)
	claimController := claims.NewClaimController(bootstrap.Logger, claimUsecase)

	// Remittance
	remittanceMongoRepository := remittances.NewRemittanceMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	remittanceUsecase := remittances.NewRemittanceUsecase(bootstrap.Logger, remittanceMongoRepository, redisRepository, intakeQueue, bootstrap.InternalConfig)
	remittanceController := remittances.NewRemittanceController(bootstrap.Logger, remittanceUsecase)

	// Background intake worker
	worker := remittances.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, intakeQueue, claimGateway, remittanceUsecase, redisRepository)
	bootstrap.WorkerStop = worker.Start(context.Background())

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, claimController, remittanceController)

	return &bootstrap
}
