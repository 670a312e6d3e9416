package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EV Warranty Estimate Service API
// @version         1.0
// @description     Versioned repair estimates for EV warranty claims, constrained by active recalls.
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
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
