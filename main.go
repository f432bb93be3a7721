package main

import (
	"serverhub/cli"
	"serverhub/config"
	"serverhub/forum"
	"serverhub/storage"
	"serverhub/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	store, err := openStore(cfg)
	if err != nil {
		utils.Sugar.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err)
	}

	svc, err := forum.New(store, utils.Sugar)
	if err != nil {
		utils.Sugar.Fatalf("failed to load forum state: %v", err)
	}

	utils.Sugar.Infof("ServerHub forum ready (backend=%s)", cfg.StoreBackend)
	if err := cli.New(svc).Run(); err != nil {
		utils.Sugar.Fatalf("shell stopped with error: %v", err)
	}
}

func openStore(cfg config.AppConfig) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return storage.NewGormStore(cfg.SQLitePath, cfg.LogLevel)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.DataDir, utils.Sugar)
	}
}
