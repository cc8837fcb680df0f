package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/config"
	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/handlers"
	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("❌ Invalid configuration: %v", e)
		}
		log.Fatal("❌ Configuration validation failed")
	}
	log.Println("✅ Config loaded successfully")

	// Initialize services
	parser := services.NewDocumentParserService()

	llmClient, err := services.NewCompletionClient(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize completion client: %v", err)
	}
	log.Printf("✅ %s completion client initialized (model %s)", cfg.LLM.Provider, cfg.LLM.Model)

	skillService := services.NewSkillService(
		parser,
		llmClient,
		cfg.Document.MaxChars,
		cfg.LLM.Timeout,
	)
	log.Println("✅ Skill service initialized")

	// Initialize handlers
	skillHandler := handlers.NewSkillHandler(skillService)
	infoHandler := handlers.NewInfoHandler(cfg.Owner.Number)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      handlers.ServerName + " API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	skillHandler.RegisterRoutes(api)
	infoHandler.RegisterRoutes(api)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": handlers.ServerName + " API",
			"version": handlers.ServerVersion,
			"endpoints": []string{
				"GET /api/v1/health",
				"GET /api/v1/about",
				"GET /api/v1/validate",
				"GET /api/v1/skills",
				"POST /api/v1/skills/:name",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	kind := "internal_error"
	if code < fiber.StatusInternalServerError {
		kind = string(models.ErrInvalidRequest)
	}

	return c.Status(code).JSON(models.ErrorResponse{
		ErrorKind: kind,
		Message:   err.Error(),
	})
}
