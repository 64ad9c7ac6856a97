package main

import (
	"context"
	"fmt"
	"net/http"

	"booking/cmd"
	httpadapter "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/fcm"
	"booking/internal/adapters/out/postgres/distancerepo"
	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/adapters/out/postgres/userrepo"
	"booking/internal/adapters/out/sms"
	"booking/internal/jobs"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB := mustOpenDatabase(config)
	fcmClient := mustInitFirebase(config)

	pushSender := fcm.NewPushSender(fcmClient)
	smsSender := sms.NewSender(config.SMSEndpoint, config.SMSAPIKey, config.SMSSenderName)

	root := cmd.NewCompositionRoot(config, gormDB, pushSender, smsSender)

	jobManager := jobs.NewJobManager(
		root.CreateExpireOverdueJobsCommandHandler(),
		root.CreateSendSessionRemindersCommandHandler(),
		config.ReminderWindow,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start background jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&root, config, logger)
}

func mustOpenDatabase(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&distancerepo.DistanceDTO{},
		&userrepo.UserDTO{},
		&userrepo.UserLanguageDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database schema: %v", err)
	}

	return gormDB
}

func mustInitFirebase(config cmd.Config) *messaging.Client {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCreds))
	if err != nil {
		log.Fatalf("failed to initialize firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("failed to create firebase messaging client: %v", err)
	}

	return client
}

func startWebServer(root *cmd.CompositionRoot, config cmd.Config, logger *zap.Logger) {
	server := httpadapter.NewServer(
		root.CreateCreateJobCommandHandler(),
		root.CreateUpdateJobCommandHandler(),
		root.CreateAcceptJobCommandHandler(),
		root.CreateStartJobCommandHandler(),
		root.CreateCancelJobCommandHandler(),
		root.CreateEndJobCommandHandler(),
		root.CreateCustomerNotCallCommandHandler(),
		root.CreateReopenJobCommandHandler(),
		root.CreateCorrectDistanceCommandHandler(),
		root.CreateNotifyTranslatorsCommandHandler(),
		root.CreateGetJobQueryHandler(),
		root.CreateGetUsersJobsQueryHandler(),
		root.CreateGetUsersJobsHistoryQueryHandler(),
		root.CreateGetAllJobsQueryHandler(),
		root.CreateGetPotentialJobsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1",
		httpadapter.RateLimitMiddleware(rate.Limit(config.RateLimit), config.RateBurst),
		httpadapter.AuthMiddleware([]byte(config.JWTSecret)),
	)
	server.RegisterRoutes(api)

	logger.Info("starting http server", zap.String("port", config.HTTPPort))
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
