package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/infrastructure/security"
)

// ClaimsKey is where Auth stores the verified identity claim in the gin
// context.
const ClaimsKey = "claims"

// Auth rejects requests without a valid bearer token and stores the verified
// claim for the handlers downstream.
func Auth(tokens *security.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claim, ok := verify(ctx, tokens)
		if !ok {
			return
		}
		ctx.Set(ClaimsKey, claim)
		ctx.Next()
	}
}

// AdminOnly additionally demands the admin role. 401 for a bad token, 403
// for a valid non-admin one.
func AdminOnly(tokens *security.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claim, ok := verify(ctx, tokens)
		if !ok {
			return
		}
		if claim.Role != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, model.Err("Admin privileges required."))
			return
		}
		ctx.Set(ClaimsKey, claim)
		ctx.Next()
	}
}

// Claims returns the identity stored by Auth. The second return is false
// only when the middleware did not run, which is a routing bug.
func Claims(ctx *gin.Context) (model.IdentityClaim, bool) {
	v, ok := ctx.Get(ClaimsKey)
	if !ok {
		return model.IdentityClaim{}, false
	}
	claim, ok := v.(model.IdentityClaim)
	return claim, ok
}

func verify(ctx *gin.Context, tokens *security.TokenService) (model.IdentityClaim, bool) {
	token, ok := bearerToken(ctx.Request.Header.Get("Authorization"))
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, model.Err("Authorization header is missing or malformed."))
		return model.IdentityClaim{}, false
	}
	claim, err := tokens.Verify(token)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, model.Err(unauthorizedMessage(err)))
		return model.IdentityClaim{}, false
	}
	return claim, true
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, security.ErrTokenExpired):
		return "Token has expired."
	case errors.Is(err, security.ErrMalformedToken):
		return "Token is malformed."
	default:
		return "Token is invalid."
	}
}
