package main

import (
	"os"

	_ "dekora_studio/docs"
	"dekora_studio/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Dekora Estimate Service API
// @version         1.0
// @description     Multi-tenant interior-design estimate service (pricing config + quote flow + PDF generation) backed by DynamoDB.

// @contact.name   API Support
// @contact.email  support@dekora.example

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	routes.Run()
}
