package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the authenticated actor's ID in the request context.
const actorIDKey = contextKey("actorID")

// orgIDKey is the key used to store the actor's organisation ID in the request context.
const orgIDKey = contextKey("orgID")

// GetActorIDFromContext retrieves the authenticated actor ID from the Gin context.
// It returns the actor ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(actorIDKey); v != nil {
		if actorID, ok := v.(string); ok {
			return actorID, true
		}
	}
	return "", false
}

// GetOrgIDFromContext retrieves the actor's organisation ID from the Gin context.
func GetOrgIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(orgIDKey); v != nil {
		if orgID, ok := v.(string); ok {
			return orgID, true
		}
	}
	return "", false
}
