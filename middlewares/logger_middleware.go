package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func LoggerMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		entry := log.WithFields(logrus.Fields{
			"status":     ctx.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  ctx.ClientIP(),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
		})

		if errs := ctx.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			entry.Error(errs)
			return
		}
		switch status := ctx.Writer.Status(); {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}
