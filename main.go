package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roamstay/vacation-rental-backend/config"
	"github.com/roamstay/vacation-rental-backend/middleware"
	"github.com/roamstay/vacation-rental-backend/routes"
	"github.com/roamstay/vacation-rental-backend/store"
	"github.com/roamstay/vacation-rental-backend/utils"
)

func setupRouter(cfg config.Config, client *mongo.Client) *mux.Router {
	stores := store.NewMongoStores(client.Database(cfg.Database))
	redisClient := config.InitRedis(cfg)
	tokens := utils.NewJWTManager(cfg.JWTKey)
	ping := func(ctx context.Context) error { return client.Ping(ctx, nil) }

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	routes.Routes(router, stores, redisClient, tokens, ping)
	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the database")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Error().Err(err).Msg("error closing MongoDB connection")
			return
		}
		log.Info().Msg("MongoDB connection closed")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureIndexes(ctx, client.Database(cfg.Database)); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	cancel()

	router := setupRouter(cfg, client)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("error starting server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
