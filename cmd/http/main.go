package main

import (
	"context"
	"log"
	"net/http"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/delivery/http/controllers"
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/delivery/http/routers"
	"openhours-service/internal/app/drivers/database"
	"openhours-service/internal/app/drivers/logger"
	openHours "openhours-service/internal/app/services/core/open_hours"
	"openhours-service/internal/app/services/core/schedules"
	"openhours-service/internal/app/services/shared/locker"
	"openhours-service/internal/app/services/shared/redis"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", internalConfig.App.Address+internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Open hours
	openHoursUsecase, err := openHours.NewOpenHoursUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}
	openHoursController := controllers.NewOpenHoursController(bootstrap.Logger, bootstrap.InternalConfig, openHoursUsecase)

	// Schedules
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := scheduleMongoRepository.EnsureIndexes(indexCtx); err != nil {
		return err
	}
	scheduleUsecase := schedules.NewScheduleUsecase(
		scheduleMongoRepository,
		redisRepository,
		openHoursUsecase,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, bootstrap.InternalConfig, scheduleUsecase)

	// Cache warm worker
	worker := schedules.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, scheduleUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		openHoursController,
		scheduleController,
	)
	return nil
}
