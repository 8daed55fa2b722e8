package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campuskit/campus-portal/pkg/apperror"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// KnownRole reports whether role is one of the three fixed portal roles.
func KnownRole(role string) bool {
	return role == RoleAdmin || role == RoleTeacher || role == RoleStudent
}

// Principal is the authenticated identity derived from a verified token.
// It lives for one request only and is never persisted.
type Principal struct {
	SubjectID string `json:"subject_id"`
	Role      string `json:"role"`
}

// Claims extends the registered claim set with the portal role so that
// verification never has to touch storage.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed identity tokens. It is stateless and
// keyed only by the shared secret and the clock passed into each call.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window tokens are issued with.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for subjectID carrying role, valid from now until
// now plus the configured TTL.
func (c *Codec) Issue(subjectID, role string, now time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and checks tokenString against the shared secret at the
// given instant. Expired tokens fail with apperror.ErrTokenExpired; any
// other defect (bad signature, wrong algorithm, garbage input) fails with
// apperror.ErrUnauthorized.
func (c *Codec) Verify(tokenString string, now time.Time) (Principal, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, apperror.ErrTokenExpired
		}
		return Principal{}, apperror.ErrUnauthorized
	}

	if !parsed.Valid || claims.Subject == "" {
		return Principal{}, apperror.ErrUnauthorized
	}

	return Principal{SubjectID: claims.Subject, Role: claims.Role}, nil
}
