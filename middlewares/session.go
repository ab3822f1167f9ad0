package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/services"
)

const (
	// SessionCookie names the cookie that keys a customer's session.
	SessionCookie = "delis_session"

	sessionContextKey = "session"
)

// SessionMiddleware binds every request to a session. A missing or stale
// cookie gets a fresh session (menu page, empty cart) and a new cookie.
func SessionMiddleware(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)
		session := manager.GetOrCreate(id)
		if session.ID != id {
			c.SetCookie(SessionCookie, session.ID, 0, "/", "", false, true)
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session the middleware attached.
func SessionFromContext(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	return v.(*models.Session)
}
