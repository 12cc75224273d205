package security

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"surfjobs-backend/internal/domain"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrInvalidSubject = errors.New("token subject is not a profile id")
)

const accessAudience = "surfjobs-api"

// UserClaims are the claims issued by the identity provider for an access token.
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager is the identity provider adapter: it turns a bearer token into
// an authenticated identity.
type TokenManager interface {
	ValidateToken(tokenString string) (*UserClaims, error)
	ResolveIdentity(tokenString string) (domain.Identity, error)
}

type tokenManager struct {
	secret []byte
	issuer string
}

func NewTokenManager(secret, issuer string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	opts := []jwt.ParserOption{jwt.WithAudience(accessAudience)}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// ResolveIdentity validates the token and returns the profile it was issued to.
func (m *tokenManager) ResolveIdentity(tokenString string) (domain.Identity, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return domain.Identity{}, err
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return domain.Identity{}, ErrInvalidSubject
	}
	return domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
