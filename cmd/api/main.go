// @title           Systematic Theology API
// @version         1.0
// @description     A reference and indexing API for a systematic theology corpus: scripture reference parsing, the doctrine hierarchy, internal links, and passage-to-doctrine lookups.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  shuvoedward@gmail.com

// @host      localhost:4000
// @BasePath  /v1

package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"shuvoedward/Theology_project/internal/cache"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/ratelimit"
	"shuvoedward/Theology_project/internal/scheduler"
	"shuvoedward/Theology_project/internal/service"
	"sync"
	"time"

	_ "github.com/lib/pq"

	_ "shuvoedward/Theology_project/docs"
)

var (
	version = "1.0.0"
)

type config struct {
	port int
	env  string

	db struct {
		dsn string
	}

	ratelimit struct {
		ipRateLimit     int
		importRateLimit int
	}

	scheduler struct {
		workers int
	}

	redisConfig cache.RedisConfig
}

type application struct {
	config            config
	logger            *slog.Logger
	redis             *cache.RedisClient
	models            data.Models
	services          *service.Service
	scheduler         *scheduler.Scheduler
	wg                sync.WaitGroup
	ipRateLimiter     *ratelimit.RateLimiter
	importRateLimiter *ratelimit.RateLimiter
}

func main() {
	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")

	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")

	flag.StringVar(&cfg.db.dsn, "db-dsn", "", "PostgreSQL DSN")

	flag.IntVar(&cfg.ratelimit.ipRateLimit, "ip-rate-limit", 30, "IP rate limit")
	flag.IntVar(&cfg.ratelimit.importRateLimit, "import-rate-limit", 2, "Import rate limit")

	flag.IntVar(&cfg.scheduler.workers, "scheduler-workers", 2, "Cache warm workers")

	flag.StringVar(&cfg.redisConfig.Host, "redis-host", "localhost", "Redis Host")
	flag.StringVar(&cfg.redisConfig.Port, "redis-port", "6379", "Redis Port")
	flag.StringVar(&cfg.redisConfig.Password, "redis-password", "", "Redis Password")
	flag.IntVar(&cfg.redisConfig.DB, "redis-db", 0, "Redis DB")
	flag.IntVar(&cfg.redisConfig.PoolSize, "redis-poolsize", 10, "Redis Pool Size")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// DB connections

	db, err := openDB(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("Successful connection to database")

	redisClient, err := cache.NewRedisClient(cfg.redisConfig, 24*time.Hour)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("Successful connection to redis")

	models := data.NewModels(db)
	services := service.NewServices(models, logger, redisClient)

	sched := scheduler.NewScheduler(cfg.scheduler.workers, services.Theology, logger)
	sched.Start()

	// The import service queues cache warm tasks after each committed batch.
	services.Import.Scheduler = sched

	app := application{
		config:            cfg,
		logger:            logger,
		redis:             redisClient,
		models:            models,
		services:          services,
		scheduler:         sched,
		ipRateLimiter:     ratelimit.NewRateLimiter(cfg.ratelimit.ipRateLimit, time.Second),
		importRateLimiter: ratelimit.NewRateLimiter(cfg.ratelimit.importRateLimit, time.Second),
	}

	handlers := NewHandlers(&app, services)

	err = app.serve(handlers)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
