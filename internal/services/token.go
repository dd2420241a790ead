package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
)

// Identity is the subject a verified token resolves to.
type Identity struct {
	Email  string `json:"email"`
	Kind   string `json:"kind"`
	UserID uint   `json:"user_id"`
}

const (
	KindCompany   = "company"
	KindCandidate = "candidate"
)

type TokenService interface {
	Issue(identity Identity) (string, error)
	Verify(tokenString string) (*Identity, error)
}

type tokenService struct {
	secret        []byte
	ttl           time.Duration
	enforceExpiry bool
}

func NewTokenService(secret string, ttl time.Duration, enforceExpiry bool) TokenService {
	return &tokenService{
		secret:        []byte(secret),
		ttl:           ttl,
		enforceExpiry: enforceExpiry,
	}
}

func (t *tokenService) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  identity.Email,
		"kind": identity.Kind,
		"uid":  identity.UserID,
		"exp":  now.Add(t.ttl).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func (t *tokenService) Verify(tokenString string) (*Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if !t.enforceExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	identity := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.Email = sub
	}
	if kind, ok := claims["kind"].(string); ok {
		identity.Kind = kind
	}
	if uid, ok := claims["uid"].(float64); ok {
		identity.UserID = uint(uid)
	}
	if identity.Email == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return &identity, nil
}
