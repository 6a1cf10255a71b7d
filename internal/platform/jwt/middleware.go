package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"trackapp/internal/feature/auth/domain/entity"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	// ContextUserID holds the uint user ID taken from the verified token.
	ContextUserID = "userID"
	// ContextUser holds the resolved *entity.User, when resolution succeeded.
	ContextUser = "authUser"
)

// unauthenticatedMsg is the fixed body for every 401 produced by the gate.
const unauthenticatedMsg = "You must be logged in."

// UserResolver looks up the user record behind a verified token subject.
type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated requests. The secret and the user
// repository are injected at construction instead of being looked up
// globally per request.
func AuthRequired(secret string, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header. Header lookup is case-insensitive:
		// net/http canonicalizes header names on the way in.
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMsg})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Server misconfiguration (empty signing secret)
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. Parse and verify the signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMsg})
			return
		}

		// 4. Extract the subject claim (JWT numbers decode as float64)
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMsg})
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMsg})
			return
		}
		userID := uint(sub)
		c.Set(ContextUserID, userID)

		// 5. Resolve the user record and attach it. A verified token whose
		// subject no longer resolves still passes the gate with only the ID
		// attached; handlers that need the record reject it themselves.
		if user, err := users.FindByID(c.Request.Context(), userID); err == nil {
			c.Set(ContextUser, user)
		}

		c.Next()
	}
}
