package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery/cmd"
	httpin "grocery/internal/adapters/in/http"
	"grocery/internal/adapters/out/postgres/migrations"
	"grocery/internal/adapters/out/rabbitmq"
	"grocery/internal/jobs"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	defer redisClient.Close()

	amqpConn, err := amqp.Dial(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Error connecting to rabbitmq: %v", err)
	}
	defer amqpConn.Close()

	publisher, err := rabbitmq.NewPublisher(amqpConn)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}
	defer publisher.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, logger)
	if err != nil {
		log.Fatalf("Error assembling composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceOrdersCommandHandler(),
		app.CreateRequestVerificationCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		AmqpURL:       goDotEnvVariable("AMQP_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}
	if err := migrations.Up(sqlDB); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpin.NewServer(
		app.CreateAddBasketItemCommandHandler(),
		app.CreateUpdateBasketItemQuantityCommandHandler(),
		app.CreateRemoveBasketItemCommandHandler(),
		app.CreateClearBasketCommandHandler(),
		app.CreateEstimateDeliveryCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateApproveRiderPaymentCommandHandler(),
		app.CreateGetBasketQueryHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetVendorsQueryHandler(),
		app.CreateGetVendorProductsQueryHandler(),
		app.CreateGetRiderPaymentsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "Web server shutdown failed", "error", err)
	}
}
