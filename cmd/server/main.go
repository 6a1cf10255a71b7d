package main

import (
	"fmt"
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"trackapp/internal/app/config"
	"trackapp/internal/app/router"
	authadapters "trackapp/internal/feature/auth/adapters"
	authhandler "trackapp/internal/feature/auth/transport/handler"
	authusecase "trackapp/internal/feature/auth/usecase"
	trackadapters "trackapp/internal/feature/tracks/adapters"
	trackhandler "trackapp/internal/feature/tracks/transport/handler"
	trackusecase "trackapp/internal/feature/tracks/usecase"
	"trackapp/internal/platform/cache"
	infradb "trackapp/internal/platform/db"
	jwtmw "trackapp/internal/platform/jwt"
	infraredis "trackapp/internal/platform/redis"
)

func main() {
	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg.DatabaseURL)

	// Redis (optional; the track cache degrades to pass-through without it)
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	trackRepo := trackadapters.NewTrackPostgres(db)
	cachedTrackRepo := cache.NewCachingTrackRepository(rdb, 0, trackRepo, "tracks")

	// Token generator
	tokens := jwtmw.NewGenerator(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	tracksUC := trackusecase.NewTracksUsecase(cachedTrackRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	trackH := trackhandler.NewTrackHandler(tracksUC)

	r := router.NewRouter(authH, trackH, cfg.JWTSecret, userRepo)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
