package main

import (
	_ "github.com/rabwill/pizza-api/docs"
	"github.com/rabwill/pizza-api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pizza API
// @version         1.0
// @description     Pizza storefront API (catalog + orders) backed by DynamoDB with a bundled local fallback.

// @contact.name   API Support

// @license.name  MIT

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
