package main

import (
	"github.com/devtemiloluwa/translator-app/internal/config"
	"github.com/devtemiloluwa/translator-app/internal/database"
	"github.com/devtemiloluwa/translator-app/internal/handlers"
	"github.com/devtemiloluwa/translator-app/internal/services"
	"github.com/devtemiloluwa/translator-app/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Disconnect()

	// Providers in priority order: LibreTranslate, MyMemory, then the LLM when
	// a key is configured. Each one sits behind its own circuit breaker.
	providers := []services.Provider{
		services.WithBreaker(services.NewLibreTranslate(cfg.LibreTranslateURL, cfg.LibreTranslateAPIKey)),
		services.WithBreaker(services.NewMyMemory(cfg.MyMemoryURL)),
	}
	if cfg.GroqAPIKey != "" {
		providers = append(providers, services.WithBreaker(services.NewLLM(cfg.GroqAPIKey, cfg.GroqModel)))
	}
	chain := services.NewChain(providers...)

	h := handlers.New(
		store.NewMongoUserStore(database.DB),
		store.NewMongoTranslationStore(database.DB),
		chain,
		cfg.JWTSecret,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	h.RegisterRoutes(app)

	logrus.Infof("Server starting on port %s", cfg.Port)
	logrus.Fatal(app.Listen(":" + cfg.Port))
}
