package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"msa-backend/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	artifactKey = "artifact"
)

// SetUserID records the authenticated user for downstream handlers and logs.
func SetUserID(c *gin.Context, userID string) {
	if userID != "" {
		c.Set(userIDKey, userID)
	}
}

// UserIDFromContext fetches the user ID set by the session middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// SetArtifact tags the request with the artifact filename it touches.
func SetArtifact(c *gin.Context, filename string) {
	if filename != "" {
		c.Set(artifactKey, filename)
	}
}

// ArtifactFromContext returns the artifact filename tagged on the request.
func ArtifactFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(artifactKey)
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}
		if UserIDFromContext(c) == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}
		c.Next()
	}
}
