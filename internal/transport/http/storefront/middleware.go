package storefront

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger logs one line per request once the response is written.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if sid := c.Param("sid"); sid != "" {
			fields = append(fields, zap.String("session_id", sid))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

func requestFields(c *gin.Context, err error) []zap.Field {
	return []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("session_id", c.Param("sid")),
		zap.String("product_id", c.Param("id")),
		zap.String("item_id", c.Param("item_id")),
		zap.Error(err),
	}
}
