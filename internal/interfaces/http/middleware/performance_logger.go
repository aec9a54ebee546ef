package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Rotas monitoradas: envios de formulário e exportação
var monitoredRoutes = []string{
	"/identificacao",
	"/questionario",
	"/reiniciar",
	"/api",
}

// PerformanceLogger mede o tempo de resposta das rotas que acessam o banco
func PerformanceLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// O ErrorHandler roda aqui para que o status registrado seja o enviado ao cliente
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)

		return nil
	}
}
