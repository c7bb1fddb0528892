package main

import (
	"github.com/rafif143/basket/config"
	"github.com/rafif143/basket/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
