package middleware

import "github.com/gin-gonic/gin"

// callerIDKey is the key used to store the authenticated caller identity in
// the request context.
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller identity from
// the Gin context. It returns the identity and whether it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(callerIDKey)
	if v == nil {
		return "", false
	}
	callerID, ok := v.(string)
	if !ok || callerID == "" {
		return "", false
	}
	return callerID, true
}
