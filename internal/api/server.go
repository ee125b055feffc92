package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/ocs-portal/placement_service/config"
	"github.com/ocs-portal/placement_service/infra/queue"
	"github.com/ocs-portal/placement_service/internal/api/rest/handlers"
	"github.com/ocs-portal/placement_service/internal/domain"
	"github.com/ocs-portal/placement_service/internal/helper"
	"github.com/ocs-portal/placement_service/internal/repository"
	"github.com/ocs-portal/placement_service/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	// TranslateError turns the driver's unique violations into
	// gorm.ErrDuplicatedKey, which the application repository relies on.
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Application{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	auth, err := helper.SetupAuth(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	if err != nil {
		log.Fatalf("auth setup error: %v", err)
	}

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, auth)
	placementSvc := services.NewPlacementService(userRepo, profileRepo, applicationRepo, kafkaProducer)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(authSvc, auth).SetupRoutes(app)
	handlers.NewStudentHandler(placementSvc, auth).SetupRoutes(app)
	handlers.NewRecruiterHandler(placementSvc, auth).SetupRoutes(app)
	handlers.NewAdminHandler(placementSvc, auth).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}
