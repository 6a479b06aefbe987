package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Thonkla/PlaceMate/internal/archive"
	"github.com/Thonkla/PlaceMate/internal/auth"
	"github.com/Thonkla/PlaceMate/internal/cache"
	"github.com/Thonkla/PlaceMate/internal/calendar"
	"github.com/Thonkla/PlaceMate/internal/config"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const metricsNamespace = "placemate"

type App struct {
	cfg    config.Config
	log    logger.Logger
	db     *pgxpool.Pool
	sqlDB  *sql.DB
	redis  *redis.Client
	router *gin.Engine
}

func New(cfg config.Config, log logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	db, err := newPostgres(cfg.PG.DSN)
	if err != nil {
		return nil, err
	}
	a.db = db
	// database/sql view of the same pool, for goose and GORM.
	a.sqlDB = stdlib.OpenDBFromPool(db)

	rdb, err := newRedis(cfg.Redis)
	if err != nil {
		a.closeStores()
		return nil, err
	}
	a.redis = rdb

	if err := runMigrations(a.sqlDB, cfg.PG.MigrationsDir); err != nil {
		a.closeStores()
		return nil, err
	}
	log.Info("Migrations applied", "dir", cfg.PG.MigrationsDir)

	gormDB, err := newGorm(a.sqlDB, cfg.App.Env)
	if err != nil {
		a.closeStores()
		return nil, err
	}

	placeCache := cache.NewPlaceCache(rdb, cfg.Redis.DefaultTTL.Duration())
	// The catalogue may have been reseeded since the last run.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := placeCache.InvalidateAll(ctx); err != nil {
		log.Warn("Failed to reset place search cache", "error", err)
	}
	cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := Deps{
		Config:     cfg,
		Log:        log,
		Registry:   reg,
		Metrics:    metrics.NewMetrics(metricsNamespace, reg),
		Plans:      repo.NewPGPlanRepo(db),
		Archives:   repo.NewPGArchiveRepo(db),
		Places:     repo.NewGormPlaceRepo(gormDB),
		Users:      repo.NewPGUserRepo(db),
		Tx:         repo.NewPGTxManager(db),
		Archive:    archive.NewManager(log),
		PlaceCache: placeCache,
		Tokens:     auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration(), auth.NewRevocationStore(rdb)),
	}
	if cfg.Google.ClientID != "" {
		g := calendar.NewGoogle(calendar.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			CalendarID:   cfg.Google.CalendarID,
			TimeZone:     cfg.Google.TimeZone,
		}, log.With("component", "calendar"))
		deps.Calendar = g
		deps.Connector = g
	} else {
		log.Warn("GOOGLE_CLIENT_ID is empty, calendar sync disabled")
	}

	a.router = NewRouter(deps)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.closeStores()
	return nil
}

func (a *App) closeStores() {
	if a.sqlDB != nil {
		_ = a.sqlDB.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newGorm(db *sql.DB, env string) (*gorm.DB, error) {
	level := gormlogger.Silent
	if env == "dev" {
		level = gormlogger.Warn
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return gormDB, nil
}
