package main

import (
	_ "construction_estimator/docs"
	"construction_estimator/internal/adapter/http/routes"
	"construction_estimator/internal/infrastructure/config"
	"construction_estimator/internal/infrastructure/logger"
	"log"
	"log/slog"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construction Estimator API
// @version         1.0
// @description     Construction cost estimates with a bill of quantities, per-user history and admin-managed reference rates.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	slog.SetDefault(logger.New(cfg.App.Env))

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
