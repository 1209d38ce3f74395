package main

import (
	"shareit/internal/config"
	"shareit/internal/gateway"
	"shareit/internal/gateway/client"
	"shareit/utils"
)

func main() {
	cfg := config.LoadGateway()

	base := client.NewBaseClient(cfg.ServerURL, cfg.ClientTimeout)
	router := gateway.SetupRouter(base)

	utils.Info("starting gateway", map[string]any{"port": cfg.Port, "serverURL": cfg.ServerURL})
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Fatal("gateway stopped", map[string]any{"error": err.Error()})
	}
}
