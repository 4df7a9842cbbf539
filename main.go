package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"usermapper_backend/internals/configs"
	database "usermapper_backend/internals/databases"
	helper "usermapper_backend/internals/helpers"
	middlewares "usermapper_backend/internals/middlewares"
	routes "usermapper_backend/internals/route"
	"usermapper_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	log := configs.InitLogs(configs.LogLevel)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrate
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ migrate: %v", err)
	}

	if configs.RunSeeds {
		if err := seeds.RunAllSeeds(db, configs.SeedFile); err != nil {
			log.Fatalf("❌ seed: %v", err)
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, db)

	go func() {
		log.Infof("✅ Listening on :%s", configs.AppPort)
		if err := app.Listen("0.0.0.0:" + configs.AppPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
	log.Info("👋 shutdown complete")
}
