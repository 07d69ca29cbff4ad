package auth

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/models"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session_id"

// NewSession mints a session for the user with a random opaque token.
func NewSession(userID primitive.ObjectID, ttl time.Duration) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}
