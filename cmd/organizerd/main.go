// Command organizerd wires the persistence core together: it opens the
// backing store, ensures the schema, constructs the repositories and
// services, and serves health/metrics endpoints until shutdown.
//
// The CRUD surface itself is consumed in-process by the web layer built on
// top of this module; no request routing lives here.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"orgbox/internal/common/pagination"
	"orgbox/internal/infra/db"
	"orgbox/internal/observability/logging"
	"orgbox/internal/repository"
	"orgbox/internal/resilience/circuitbreaker"
	"orgbox/pkg/config"

	pgRepo "orgbox/internal/infra/adapter/persistence/postgres"
	sqliteRepo "orgbox/internal/infra/adapter/persistence/sqlite"

	alarmUC "orgbox/internal/usecase/alarm"
	bookmarkUC "orgbox/internal/usecase/bookmark"
	boxUC "orgbox/internal/usecase/box"
	feedUC "orgbox/internal/usecase/feed"
	userUC "orgbox/internal/usecase/user"
)

// Services bundles the per-entity use cases handed to the consuming layer.
type Services struct {
	Users     *userUC.Service
	Boxes     *boxUC.Service
	Bookmarks *bookmarkUC.Service
	Alarms    *alarmUC.Service
	Feeds     *feedUC.Service
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	driver := config.GetEnvString("DB_DRIVER", db.DriverPostgres)
	if err := db.CreateSchema(database, driver); err != nil {
		logger.Error("failed to create schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 全リポジトリをサーキットブレーカー経由で接続する
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	services := buildServices(breaker, driver, pagination.LoadFromEnv())

	logger.Info("persistence core ready",
		slog.String("driver", driver),
		slog.Int("feed_page_size", services.Feeds.Config.PageSize))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := startMetricsServer(logger, breaker)
	<-stop

	shutdownMetricsServer(logger, server)
	logger.Info("organizerd stopped")
}

// buildServices constructs the repository set for the selected driver and
// the services on top of it. Composition is explicit: every service receives
// its store handle here, at startup.
func buildServices(dbh repository.DB, driver string, pageCfg pagination.Config) *Services {
	var (
		users     repository.UserRepository
		boxes     repository.BoxRepository
		bookmarks repository.BookmarkRepository
		alarms    repository.AlarmRepository
		feeds     repository.FeedRepository
	)

	switch driver {
	case db.DriverSQLite:
		users = sqliteRepo.NewUserRepo(dbh)
		boxes = sqliteRepo.NewBoxRepo(dbh)
		bookmarks = sqliteRepo.NewBookmarkRepo(dbh)
		alarms = sqliteRepo.NewAlarmRepo(dbh)
		feeds = sqliteRepo.NewFeedRepo(dbh)
	default:
		users = pgRepo.NewUserRepo(dbh)
		boxes = pgRepo.NewBoxRepo(dbh)
		bookmarks = pgRepo.NewBookmarkRepo(dbh)
		alarms = pgRepo.NewAlarmRepo(dbh)
		feeds = pgRepo.NewFeedRepo(dbh)
	}

	return &Services{
		Users:     &userUC.Service{Repo: users},
		Boxes:     &boxUC.Service{Repo: boxes},
		Bookmarks: &bookmarkUC.Service{Repo: bookmarks},
		Alarms:    &alarmUC.Service{Repo: alarms},
		Feeds:     &feedUC.Service{Repo: feeds, Config: pageCfg},
	}
}
