package middleware

import (
	"log"
	"net/http"

	"startlabx/internal/domain/entities"
	"startlabx/pkg"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the verified caller.
const IdentityKey = "identity"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid access token", http.StatusUnauthorized)

// TokenVerifier turns an Authorization header value into a caller identity.
type TokenVerifier interface {
	Verify(raw string) (entities.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller identity on the context.
func RequireAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := v.Verify(c.GetHeader("Authorization"))
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetIdentity(c, identity)
		c.Next()
	}
}

func SetIdentity(c *gin.Context, identity entities.Identity) {
	c.Set(IdentityKey, identity)
}

// IdentityFrom returns the caller stored by RequireAuth, or a zero identity.
func IdentityFrom(c *gin.Context) entities.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return entities.Identity{}
	}
	identity, _ := v.(entities.Identity)
	return identity
}
