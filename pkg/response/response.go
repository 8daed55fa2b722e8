package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-portal/internal/token"
	"github.com/campuskit/campus-portal/pkg/apperror"
)

// PrincipalKey is the gin context key the auth middleware stores the
// verified principal under.
const PrincipalKey = "principal"

// GetPrincipal retrieves the authenticated principal from the context
func GetPrincipal(c *gin.Context) (token.Principal, error) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return token.Principal{}, apperror.ErrUnauthorized
	}

	principal, ok := value.(token.Principal)
	if !ok {
		return token.Principal{}, apperror.ErrUnauthorized
	}

	return principal, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": apperror.ErrInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
