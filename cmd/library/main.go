package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-catalog/library/app"
	"github.com/Astemirdum/library-catalog/library/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(30*time.Second),
	)

	app.Run(cfg)
}
