package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"organic-marketplace/internal/auth"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

const (
	ctxUser = "currentUser"
)

// Auth resolves the session cookie against the document store and attaches
// the authenticated user to the request context. Unauthenticated requests are
// rejected with 401.
func Auth(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		session, err := store.GetSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			return
		}

		user, err := store.GetUser(c.Request.Context(), session.UserID.Hex())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session user not found"})
			return
		}

		c.Set(ctxUser, user)
		c.Next()
	}
}

// RequireRole gates a route on the typed role of the authenticated user. The
// stored role is re-parsed here so an unknown value in the database denies
// rather than passes.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		role, ok := models.ParseRole(string(user.Role))
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
