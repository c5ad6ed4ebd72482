package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/service"
)

// respondError maps a service error to its status and message. Unknown
// errors become an opaque 500 so internals never leak to the client.
func respondError(c *gin.Context, err error) {
	if status, ok := service.StatusOf(err); ok {
		c.JSON(status, gin.H{"error": err.Error(), "request_id": RequestIDFrom(c)})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong", "request_id": RequestIDFrom(c)})
}
