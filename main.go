package main

import (
	"log"
	"time"

	"disasterprep/config"
	"disasterprep/database"
	"disasterprep/identity"
	"disasterprep/session"

	authRoutes "disasterprep/routers/authRoutes"
	studentRoutes "disasterprep/routers/studentRoutes"
	teacherRoutes "disasterprep/routers/teacherRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/robfig/cron/v3"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := identity.Init(); err != nil {
		log.Fatalf("Failed to build identity stores: %v", err)
	}

	session.Init(newSessionStore())

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve lesson posters and videos from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

// newSessionStore picks Redis when configured, otherwise a process-local
// store swept on a schedule.
func newSessionStore() session.Store {
	cfg := config.AppConfig

	if cfg.RedisAddr != "" {
		store, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		return store
	}

	store := session.NewMemoryStore(cfg.SessionTTL)

	c := cron.New()
	if _, err := c.AddFunc("@every 10m", func() {
		if removed := store.PurgeExpired(); removed > 0 {
			log.Printf("Purged %d expired sessions", removed)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule session purge: %v", err)
	}
	c.Start()

	return store
}
