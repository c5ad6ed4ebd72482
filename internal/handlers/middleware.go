package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/service"
)

const (
	identityKey  = "identity"
	requestIDKey = "requestID"
)

// RequestID tags every request with an id, echoed in the X-Request-Id
// header and in error payloads.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequireAuth verifies the bearer token and stores the resolved identity in
// the request context. Downstream handlers trust the embedded id and role
// without re-reading the account.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You are not authenticated!"})
			return
		}
		identity, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You are not authenticated!"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin gates admin routes by the role claim, exact match only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identityFrom(c).Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "You are not authorized to access this resource! Admin only."})
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) service.Identity {
	id, _ := c.Get(identityKey)
	identity, _ := id.(service.Identity)
	return identity
}
