package main

import (
	_ "gemstore/docs"
	"gemstore/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gem Store API
// @version         1.0
// @description     Jewelry storefront: catalog, cart, coupons, checkout and order tracking over a key-value snapshot store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
