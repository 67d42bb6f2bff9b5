package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/phonebook/internal/logging"
	"github.com/dmitrijs2005/phonebook/internal/server/graph"
	"github.com/dmitrijs2005/phonebook/internal/server/services"
)

// bearerToken extracts the credential from an Authorization header value.
// The scheme match is case-insensitive. A missing or non-bearer header
// yields an empty string, which is the anonymous state, never an error.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func graphqlError(message, code string) gin.H {
	return gin.H{"errors": []gin.H{{
		"message":    message,
		"extensions": gin.H{"code": code},
	}}}
}

// AuthMiddleware resolves the bearer token (if any) to a request identity
// and attaches it to the request context for the resolvers. Requests with
// an invalid token are rejected outright; requests without a token proceed
// anonymously.
func AuthMiddleware(identity *services.IdentityService, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))

		id, err := identity.ResolveToken(c.Request.Context(), raw)
		if err != nil {
			logger.Error(c.Request.Context(), "token resolution failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, graphqlError("internal error", graph.CodeInternal))
			return
		}

		if id.Status == services.TokenInvalid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, graphqlError("invalid token", graph.CodeInvalidToken))
			return
		}

		c.Request = c.Request.WithContext(graph.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}
