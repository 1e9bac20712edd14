package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/erfan-rahmanian/barnameh/internal/api"
	planner_service "github.com/erfan-rahmanian/barnameh/internal/business/planner"
	"github.com/erfan-rahmanian/barnameh/internal/config"
	"github.com/erfan-rahmanian/barnameh/internal/database"
	"github.com/erfan-rahmanian/barnameh/internal/database/snapshot"
	"github.com/erfan-rahmanian/barnameh/internal/pkg/ids"
	"github.com/erfan-rahmanian/barnameh/internal/pkg/jwt"
	"github.com/erfan-rahmanian/barnameh/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	if config.Secret() == "" {
		log.Fatal("SECRET must be set")
	}

	jwts := jwt.NewManger()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)

	var store planner_service.StateRepository
	switch config.Storage() {
	case "postgres":
		db, err := database.NewPGX(ctx)
		if err != nil {
			log.Fatalf("unable to initializae db: %v", err)
		}
		store = snapshot.NewRepository(db, logger)
	default:
		store = redis.NewPlannerStateRepository(redisPool, logger)
	}

	plannerService, err := planner_service.NewService(ctx, store, ids.NewGenerator())
	if err != nil {
		log.Fatalf("unable to load planner state: %v", err)
	}

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		refreshTokens,
		plannerService,
	)
	if err != nil {
		log.Fatalf("unable to initializae api: %v", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
