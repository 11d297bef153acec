package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventstream/domain/model"
)

func testClaim(role model.UserRole) model.IdentityClaim {
	return model.IdentityClaim{
		ID:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     role,
		Status:   model.UserActive,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testClaim(model.RoleViewer))
	require.NoError(t, err)

	claim, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claim.ID)
	require.Equal(t, model.RoleViewer, claim.Role)
	require.Equal(t, model.UserActive, claim.Status)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue(testClaim(model.RoleViewer))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "one.two", "a.b.c.d"} {
		_, err := svc.Verify(token)
		require.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(testClaim(model.RoleViewer))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_RequireAdmin(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	viewerToken, err := svc.Issue(testClaim(model.RoleViewer))
	require.NoError(t, err)
	adminToken, err := svc.Issue(testClaim(model.RoleAdmin))
	require.NoError(t, err)

	_, err = svc.RequireAdmin(viewerToken)
	require.ErrorIs(t, err, ErrForbidden)

	claim, err := svc.RequireAdmin(adminToken)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, claim.Role)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	require.Equal(t, DefaultTTL, svc.ttl)
}
