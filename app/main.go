package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/devodyssey/internal/config"
	"github.com/Guyuepp/devodyssey/internal/repository"
	mysqlRepo "github.com/Guyuepp/devodyssey/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/devodyssey/internal/repository/redis"
	"github.com/Guyuepp/devodyssey/internal/rest"
	"github.com/Guyuepp/devodyssey/internal/rest/middleware"
	"github.com/Guyuepp/devodyssey/internal/usecase/blog"
	"github.com/Guyuepp/devodyssey/internal/usecase/display"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func main() {
	loaded := config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err == nil {
		logrus.SetLevel(level)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.Infof("loaded env files: %v", loaded)

	// prepare database
	dsn, err := cfg.Database.DSN()
	if err != nil {
		logrus.Fatal(err)
	}

	var db *gorm.DB
	for i := range dbMaxRetry {
		db, err = openDB(dsn)
		if err == nil {
			break
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	// A dead cache only costs the list cache and the stored display mode,
	// both of which degrade to defaults.
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Warnf("failed to open connection to cache: %v", err)
	}

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestLogger())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout))

	// 1. DB layer  2. cache layer  3. coordination layer
	blogDBRepo := mysqlRepo.NewBlogDBRepository(db)
	blogCache := myRedisCache.NewBlogCache(client)
	blogRepo := repository.NewBlogRepository(blogDBRepo, blogCache, cfg.Cache.ListTTL)

	preferences := myRedisCache.NewPreferenceStorage(client)

	// Build service Layer
	blogSvc := blog.NewService(blogRepo, blog.Options{
		WordsPerMinute: cfg.Presentation.WordsPerMinute,
		AvatarBaseURL:  cfg.Presentation.AvatarBaseURL,
		ListingPath:    cfg.Presentation.ListingPath,
	})
	displaySvc := display.NewService(preferences, cfg.Presentation.DisplayModeKey)

	rest.Register(route, rest.NewBlogHandler(blogSvc, displaySvc), rest.NewDisplayHandler(displaySvc))

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}

func openDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}
