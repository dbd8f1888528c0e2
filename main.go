package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/cmd"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/aircraft"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/audit"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/cities"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/config"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/customers"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/dashboard"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/laborkits"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/logger"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/middleware"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/tools"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/workorders"
)

const version = "1.0.0"

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Run development subcommands (ping etc.) when given
	cmd.Execute(ctx)
}

func main() {
	cfg := config.Load()

	zlog := logger.NewLogger()
	defer zlog.Sync()

	router := gin.New()
	router.Use(middleware.RequestID(cfg.TrustRequestIDHeader))
	router.Use(middleware.ExtractIdentity())
	router.Use(middleware.RequestLogger(zlog))
	router.Use(middleware.Recovery(zlog))

	forwarder := proxy.NewForwarder(cfg.APIURL, zlog)

	cities.RegisterRoutes(router, forwarder)
	workorders.RegisterRoutes(router, forwarder)
	aircraft.RegisterRoutes(router, forwarder)
	customers.RegisterRoutes(router, forwarder)
	laborkits.RegisterRoutes(router, forwarder)
	tools.RegisterRoutes(router, forwarder)
	audit.RegisterRoutes(router, forwarder)
	dashboard.RegisterRoutes(router, forwarder)

	router.GET("/health", middleware.HealthHandler(version))

	zlog.Info("gateway listening",
		zap.String("addr", cfg.AppHost),
		zap.String("upstream", cfg.APIURL),
	)
	if err := router.Run(cfg.AppHost); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
