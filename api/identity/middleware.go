package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextAccountClaims is the key used to store token claims in the Gin context.
	ContextAccountClaims = "accountClaims"
	// ContextAccountID is the key used to store the caller's account ID in the Gin context.
	ContextAccountID = "accountID"
)

// Authorize rejects requests without a valid bearer token and stores the
// caller's claims and account ID in the context.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized) // Malformed Authorization header.
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		rawID, _ := claims[service.ClaimAccountID].(string)
		accountID, err := uuid.Parse(rawID)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextAccountClaims, claims)
		c.Set(ContextAccountID, accountID)
		c.Next()
	}
}

// AccountID returns the caller stored by Authorize.
func AccountID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextAccountID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
