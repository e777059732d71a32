package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// UsageTracker receives product usage events. *analytics.Client implements it.
type UsageTracker interface {
	Enabled() bool
	Capture(distinctID, event string, properties map[string]any)
}

// PosthogMiddleware reports successful authenticated API calls as usage events.
func PosthogMiddleware(client UsageTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/loans/:id" -> "api_v1_loans_:id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		client.Capture(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event on behalf of the calling user.
func PosthogEvent(c *gin.Context, client UsageTracker, eventName string, properties map[string]any) {
	if !client.Enabled() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	client.Capture(userID, eventName, properties)
}
