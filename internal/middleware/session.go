package middleware

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"busline/internal/backendapi"
	"busline/internal/session"
)

const (
	// SessionHeader carries the session ID on API requests.
	SessionHeader = "X-Session-ID"
	// SessionCookie is the fallback cookie name for browser clients.
	SessionCookie = "busline_session"

	sessionContextKey = "session"
)

// SessionMiddleware resolves the caller's session and, when one exists,
// attaches its bearer token to the request context so outbound backend
// calls are authenticated. Requests without a session pass through; the
// handlers decide what needs login.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.Printf("session lookup failed: %v", err)
			}
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Request = c.Request.WithContext(backendapi.WithToken(c.Request.Context(), sess.AccessToken))
		c.Next()
	}
}

// SessionFrom returns the resolved session, nil when the request had none.
func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
