package main

import (
	"fmt"
	"log"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/config"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/database"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/logger"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env first so PFS_* overrides are visible to viper
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Output, cfg.Log.File)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// The service must not start with an empty signing key.
	if cfg.JWT.Secret == "" {
		zlog.Fatal("jwt.secret is required (set PFS_JWT_SECRET or config.yaml)")
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		zlog.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatalf("migrate database: %v", err)
	}

	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	zlog.Infof("parking fee API listening on %s", addr)
	if err := r.Run(addr); err != nil {
		zlog.Fatalf("run server: %v", err)
	}
}
