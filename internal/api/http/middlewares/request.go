package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Служебные маршруты опрашиваются оркестратором и Prometheus каждые несколько
// секунд — в логе запросов от них один шум.
var quietPaths = map[string]bool{
	"/liveness":  true,
	"/readyness": true,
	"/metrics":   true,
}

// RequestLogger логирует каждый запрос API: метод, путь, статус, длительность,
// client IP. Пробы и /metrics не логируются.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery
	clientIP := c.ClientIP()
	method := c.Request.Method

	c.Next()

	if quietPaths[path] {
		return
	}

	latency := time.Since(start)
	status := c.Writer.Status()
	if raw != "" {
		path = path + "?" + raw
	}
	slog.Info("request",
		"method", method,
		"path", path,
		"status", status,
		"ip", clientIP,
		"latency_ms", latency.Milliseconds(),
	)
}
