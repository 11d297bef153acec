package security

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"eventstream/domain/model"
)

// Token verification failures. The middleware maps all of these except
// ErrForbidden to 401.
var (
	ErrMalformedToken = errors.New("token is not a three-segment JWT")
	ErrBadSignature   = errors.New("token signature verification failed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrMissingClaim   = errors.New("token payload lacks the data claim")
	ErrForbidden      = errors.New("admin privileges required")
)

// DefaultTTL matches the original design: tokens live for one hour.
const DefaultTTL = 3600 * time.Second

// tokenClaims is the wire payload: {iat, exp, data: {...}}. Tokens are
// self-contained so authorization needs no store round-trip.
type tokenClaims struct {
	Iat  int64                `json:"iat"`
	Exp  int64                `json:"exp"`
	Data *model.IdentityClaim `json:"data"`
}

func (c tokenClaims) Valid() error {
	if time.Now().Unix() >= c.Exp {
		return jwt.NewValidationError("token is expired", jwt.ValidationErrorExpired)
	}
	return nil
}

// TokenService issues and verifies HS256-signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Issue(claim model.IdentityClaim) (string, error) {
	issued := s.now().UTC()
	claims := tokenClaims{
		Iat:  issued.Unix(),
		Exp:  issued.Add(s.ttl).Unix(),
		Data: &claim,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks structure, signature and expiry, then returns the embedded
// identity claim.
func (s *TokenService) Verify(tokenString string) (model.IdentityClaim, error) {
	if strings.Count(tokenString, ".") != 2 {
		return model.IdentityClaim{}, ErrMalformedToken
	}

	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
		}
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return model.IdentityClaim{}, ErrMalformedToken
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return model.IdentityClaim{}, ErrBadSignature
			case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
				return model.IdentityClaim{}, ErrTokenExpired
			}
		}
		return model.IdentityClaim{}, ErrBadSignature
	}
	if !token.Valid {
		return model.IdentityClaim{}, ErrBadSignature
	}
	if claims.Data == nil {
		return model.IdentityClaim{}, ErrMissingClaim
	}
	return *claims.Data, nil
}

// RequireUser is the "authenticated user" gate: any verified, unexpired
// token yields its claim. Pure decision function; no side effects.
func (s *TokenService) RequireUser(tokenString string) (model.IdentityClaim, error) {
	return s.Verify(tokenString)
}

// RequireAdmin additionally demands the admin role.
func (s *TokenService) RequireAdmin(tokenString string) (model.IdentityClaim, error) {
	claim, err := s.Verify(tokenString)
	if err != nil {
		return model.IdentityClaim{}, err
	}
	if claim.Role != model.RoleAdmin {
		return model.IdentityClaim{}, ErrForbidden
	}
	return claim, nil
}
