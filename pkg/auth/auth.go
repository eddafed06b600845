package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader        = "X-User-Name"
	XUserRoleHeader        = "X-User-Role"
	XUserPermissionsHeader = "X-User-Permissions"
	XGatewaySecretHeader   = "X-Gateway-Secret"

	RoleUser      = "user"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
)

type Profile struct {
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

// Identity is what the authentication layer knows about the caller.
type Identity struct {
	UserName    string
	Role        string
	Permissions []string
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserName == "" {
		return Identity{}, false
	}
	return id, true
}

func NewToken(key []byte, p Profile, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func ParseToken(key []byte, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Profile.Username == "" {
		return nil, errors.New("token has no username")
	}
	return claims, nil
}
