package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker is the part of the PostHog client the middleware needs.
// *utils.PosthogClientWrapper satisfies it.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

const trackedPropsKey = contextKey("trackedProps")

// untrackedPrefixes are request paths never reported to PostHog.
var untrackedPrefixes = []string{"/health", "/swagger"}

// currencyEvents maps "METHOD route" to the event reported for a successful call.
var currencyEvents = map[string]string{
	"GET /api/v1/currencies":               "currencies_listed",
	"GET /api/v1/currencies/active":        "active_currencies_listed",
	"GET /api/v1/currencies/:id":           "currency_viewed",
	"POST /api/v1/currencies":              "currency_created",
	"PUT /api/v1/currencies/:id":           "currency_updated",
	"PATCH /api/v1/currencies/:id":         "currency_patched",
	"DELETE /api/v1/currencies/:id":        "currency_deleted",
	"POST /api/v1/currencies/update-rates": "exchange_rates_refreshed",
	"GET /api/v1/exchange-rates":           "exchange_rates_listed",
}

// CurrencyEventName returns the event name for a method and route pattern,
// or "" when the route is not tracked.
func CurrencyEventName(method, route string) string {
	return currencyEvents[method+" "+route]
}

// TrackProperty attaches a property to the event the PostHog middleware
// reports for this request. Handlers use it for values only they know,
// such as the code of a created currency.
func TrackProperty(c *gin.Context, key string, value any) {
	props, _ := c.Get(string(trackedPropsKey))
	m, ok := props.(map[string]any)
	if !ok {
		m = make(map[string]any)
		c.Set(string(trackedPropsKey), m)
	}
	m[key] = value
}

// PosthogMiddleware reports successful currency operations to PostHog under
// the authenticated subject.
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.IsInitialized() || untracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := CurrencyEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if id := c.Param("id"); id != "" {
			props["currency_id"] = id
		}
		if extra, ok := c.Get(string(trackedPropsKey)); ok {
			for k, v := range extra.(map[string]any) {
				props[k] = v
			}
		}

		tracker.Enqueue(userID, eventName, props)
	}
}

func untracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
