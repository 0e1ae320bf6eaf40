package main

import (
	_ "payflux/docs"
	"payflux/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PayFlux API
// @version         1.0
// @description     Payment-simulation service: routes requests to mock gateways and keeps an append-only ledger.

// @host localhost:5000

// @BasePath  /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

func main() {
	routes.Run()
}
