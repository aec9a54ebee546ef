package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupMiddlewares(app *fiber.App, log *zap.Logger) {
	// Pânico em um handler vira erro 500 tratado pelo ErrorHandler
	app.Use(recover.New())

	app.Use(PerformanceLogger(log))
}

// RouteGroups define os grupos de rotas da aplicação
type RouteGroups struct {
	Public fiber.Router
	API    fiber.Router
}

// SetupRouteGroups configura os grupos: páginas do formulário e API de exportação
func SetupRouteGroups(app *fiber.App, corsOrigins string) RouteGroups {
	public := app.Group("/")

	api := app.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       300, // 5 minutes
	}))

	return RouteGroups{
		Public: public,
		API:    api,
	}
}
