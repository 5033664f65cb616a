package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/internal/auth"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
	"github.com/dench1k1ng/final-web-backend/pkg/apierrors"
)

const actorKey = "actor"

// RequireAuth resolves the bearer credential to an actor and aborts with 401
// when the token is missing, malformed, expired, fails verification, or
// references a user that no longer exists. The actor stored on the context
// is the only identity signal downstream code may trust.
func RequireAuth(jwt *auth.JWTManager, users ports.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolveActor(c, jwt, users)
		if err != nil {
			lang := GetLang(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireAdmin layers a role check on top of RequireAuth; it must run after
// it in the chain.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, GetLang(c)))
			return
		}
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.CreateError(apierrors.MsgNotAuthorized, GetLang(c)))
			return
		}
		c.Next()
	}
}

// WithActor stamps a fixed actor on the context, bypassing token
// resolution. Handler tests use it in place of RequireAuth.
func WithActor(actor *domain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the resolved actor, or nil on unauthenticated routes.
func GetActor(c *gin.Context) *domain.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(*domain.Actor); ok {
			return actor
		}
	}
	return nil
}

func resolveActor(c *gin.Context, jwt *auth.JWTManager, users ports.UserRepository) (*domain.Actor, error) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, domain.Errorf(domain.KindUnauthenticated, "missing bearer token")
	}

	actor, err := jwt.ValidateAccessToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, domain.Errorf(domain.KindUnauthenticated, "invalid token")
	}

	// The token may outlive the account; re-anchor role and existence on the
	// user record rather than trusting the claim alone.
	user, err := users.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		return nil, domain.Errorf(domain.KindUnauthenticated, "unknown user")
	}
	actor.Role = user.Role

	return actor, nil
}
