package main

import (
	"os"

	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/idgen"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}
	logger = logger.Level(level)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(),
	)

	// All state lives in these collections; it is gone on restart.
	dishStore := store.NewCollection(func(d models.Dish) string { return d.ID })
	orderStore := store.NewCollection(func(o models.Order) string { return o.ID })
	ids := idgen.New()
	if cfg.Seed {
		store.Seed(dishStore, orderStore, ids)
		logger.Info().Int("dishes", dishStore.Len()).Int("orders", orderStore.Len()).Msg("seeded starter data")
	}

	routes.SetupRoutes(r,
		handlers.NewDishHandler(dishStore, ids),
		handlers.NewOrderHandler(orderStore, ids),
	)

	logger.Info().Str("port", cfg.Server.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
