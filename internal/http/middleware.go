package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tazhibayda/jewel-service/internal/domain"
	"github.com/tazhibayda/jewel-service/internal/metrics"
	"github.com/tazhibayda/jewel-service/internal/repo"
	"github.com/tazhibayda/jewel-service/internal/security"
)

const authUserKey = "authUser"

// AuthUser is what a verified bearer token binds to the request context.
type AuthUser struct {
	UID  string
	Role domain.Role
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AuthJWT rejects requests without a bearer token (401) and requests whose
// token fails signature or expiry checks (403). On success it binds
// {userId, role} to the context; no store I/O happens here.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		tok := strings.TrimSpace(h[len("Bearer "):])
		claims, err := security.ParseAccess(secret, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token is not valid"})
			return
		}
		c.Set(authUserKey, AuthUser{UID: claims.UID, Role: claims.Role})
		c.Next()
	}
}

// RequireAdmin composes with AuthJWT and gates admin-only mutations.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		au, ok := c.Get(authUserKey)
		if !ok || au.(AuthUser).Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// RateLimit is a fixed-window per-IP limiter over Redis (INCR + EXPIRE).
// A nil Redis or non-positive limit disables it.
func RateLimit(rds *repo.Redis, perMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rds == nil || perMin <= 0 {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := fmt.Sprintf("rl:%s:%d", c.ClientIP(), time.Now().Unix()/60)
		n, err := rds.C.Incr(ctx, key).Result()
		if err != nil {
			// limiter outage must not take auth down with it
			c.Next()
			return
		}
		if n == 1 {
			rds.C.Expire(ctx, key, time.Minute)
		}
		if n > int64(perMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.InFlight.Inc()
		start := time.Now()
		c.Next()
		metrics.InFlight.Dec()
		metrics.ReqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
