package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coastwatch/config"
	"coastwatch/internal/database"
	"coastwatch/internal/repository"
	"coastwatch/internal/router"
	"coastwatch/pkg/storage"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	database.SeedEmployee(db, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"))

	mongoDB, err := database.NewMongo(context.Background(), &cfg.Mongo)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	docRepo := repository.NewDocumentRepository(mongoDB, cfg.Mongo.Collection)
	if err := docRepo.SeedCounter(context.Background()); err != nil {
		log.Fatalf("report id counter: %v", err)
	}

	media, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("media storage: %v", err)
	}

	engine := router.Setup(cfg, db, mongoDB, media)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
