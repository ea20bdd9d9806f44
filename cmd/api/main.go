package main

import (
	"log"

	"paperqa-backend/internal/bootstrap"
	"paperqa-backend/internal/shared/config"
	"paperqa-backend/internal/shared/server"
	"paperqa-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	if _, err := telemetry.Init(cfg.Env, cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
