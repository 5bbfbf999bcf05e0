package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitquest/internal/config"
	"github.com/2beens/fitquest/internal/datemath"
	"github.com/2beens/fitquest/internal/db"
	"github.com/2beens/fitquest/internal/logging"
	"github.com/2beens/fitquest/internal/profile"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// one-shot maintenance jobs, meant to be run from cron next to the service
const (
	taskSweepLapses        = "sweep-lapses"
	taskRebuildLeaderboard = "rebuild-leaderboard"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	task := flag.String("task", taskSweepLapses, "task to run [sweep-lapses | rebuild-leaderboard]")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:   true,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Environment:   *env,
		Timezone:      cfg.Timezone,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, *task)
	cancel()
	if err != nil {
		log.Errorf("task %s failed: %s", *task, err)
		os.Exit(1)
	}
	log.Infof("task %s done", *task)
}

// run executes task, deferred cleanup of the db pool and redis client runs before it returns.
func run(ctx context.Context, cfg *config.Config, task string) error {
	if task != taskSweepLapses && task != taskRebuildLeaderboard {
		return fmt.Errorf("unknown task: %s", task)
	}

	calendar, err := datemath.NewCalendarForTimezone(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("calendar for timezone: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITQUEST_POSTGRES_USER"),
		DBPassword: os.Getenv("FITQUEST_POSTGRES_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITQUEST_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	service := profile.NewService(profile.NewServiceParams{
		Repo:            profile.NewRepo(dbPool),
		Leaderboard:     profile.NewLeaderboard(rdb),
		Calendar:        calendar,
		LeaderboardSize: cfg.LeaderboardSize,
	})

	switch task {
	case taskSweepLapses:
		lapsed, err := service.SweepLapsedStreaks(ctx)
		log.Infof("sweep done, %d streaks lapsed", lapsed)
		if err != nil {
			return fmt.Errorf("sweep lapsed streaks: %w", err)
		}
	case taskRebuildLeaderboard:
		if err := service.RebuildLeaderboard(ctx); err != nil {
			return fmt.Errorf("rebuild leaderboard: %w", err)
		}
	}

	return nil
}
