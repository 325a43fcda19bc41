package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/store-service/store/app"
	"github.com/Astemirdum/store-service/store/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title    Store Service API
// @version  1.0
// @description Book catalog with per-user likes, bookmarks and ratings.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
