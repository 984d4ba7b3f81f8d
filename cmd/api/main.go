// Package main is the entry point for the RBAC authentication service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/authware/rbac-service/docs"
	"github.com/authware/rbac-service/internal/api"
	"github.com/authware/rbac-service/internal/core/domain"
	"github.com/authware/rbac-service/internal/core/service"
	"github.com/authware/rbac-service/internal/infrastructure/config"
	mongodb "github.com/authware/rbac-service/internal/infrastructure/db/mongo"
	redisdb "github.com/authware/rbac-service/internal/infrastructure/db/redis"
	"github.com/authware/rbac-service/pkg/logger"
)

// @title RBAC Authentication Service API
// @version 1.0
// @description Role-based registration, login, and token-gated routes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	registry := service.NewRoleRegistry(mongodb.NewRoleRepository(db), redisdb.NewRoleCache(rdb), log)
	if err := registry.SeedDefaults(ctx, domain.DefaultRoles()); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	e := api.NewRouter(api.Deps{
		Users: mongodb.NewUserRepository(db),
		Roles: registry,
		Mongo: db,
		Redis: rdb,
		Cfg:   cfg,
		Log:   log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
