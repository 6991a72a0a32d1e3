package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"achievement-portal/config"
	"achievement-portal/database"
	fiberapp "achievement-portal/fiber"
	"achievement-portal/route"
)

func main() {
	config.LoadEnv()

	database.ConnectPostgres()
	defer database.PostgresDB.Close()
	database.ConnectMongo()

	app := fiberapp.SetupFiber()
	route.SetupRoutes(app, database.PostgresDB, database.MongoDB)

	port := config.Getenv("PORT", "8080")

	go func() {
		log.Printf("Server running on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
