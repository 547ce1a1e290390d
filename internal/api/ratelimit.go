package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/accounts-service/internal/config"
	"github.com/hypernova-labs/accounts-service/internal/database"
	"github.com/hypernova-labs/accounts-service/internal/models"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware limita requests por IP usando una ventana fija de un
// minuto sobre Redis. Si Redis no está disponible el middleware deja pasar
// todo el tráfico.
func RateLimitMiddleware(redis *database.Redis, cfg *config.RateLimitConfig, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redis == nil || !cfg.Enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())
		count, err := redis.IncrWithTTL(key, time.Minute)
		if err != nil {
			// No bloquear tráfico por fallas del limitador
			logger.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count > int64(cfg.PerMinute) {
			c.JSON(http.StatusTooManyRequests, models.NewErrorResponse("Too many requests", "Rate limit exceeded, try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
