package main

import (
	_ "startlabx/docs"
	"startlabx/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           STARTLABX Equity API
// @version         1.0
// @description     Equity offers, cap tables and equity scenario calculators.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cli.Execute()
}
