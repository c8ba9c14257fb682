package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
)

// RateLimit throttles a route per client IP. When the limiter backend is
// unreachable the request is let through: a Redis outage must not take the
// login path down with it.
func RateLimit(limiter domain.RateLimiter, route string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := route + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.WithFields(logrus.Fields{
				"route": route,
				"error": err.Error(),
			}).Warn("rate limiter unavailable, failing open")
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": domain.ErrRateLimited.Error(),
				"data":    nil,
				"status":  http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
