package main

import (
	"github.com/ocs-portal/placement_service/config"
	"github.com/ocs-portal/placement_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
