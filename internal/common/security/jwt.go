package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies the bearer tokens issued on signup and
// login. Tokens are stateless: validity is purely a function of signature
// and expiry.
type TokenService struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenService(key []byte, exp time.Duration) *TokenService {
	return &TokenService{
		auth: jwtauth.New("HS256", key, nil),
		exp:  exp,
	}
}

// JWTAuth exposes the underlying verifier for use with jwtauth middleware.
func (s *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

func (s *TokenService) GenerateToken(userID, name string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"name": name,
		"exp":  time.Now().Add(s.exp).Unix(),
		"iat":  time.Now().Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	return tokenString, err
}

// Helper functions to extract claims, used by middleware and tests.
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["id"].(string)
	if !ok {
		return "", errors.New("id claim is missing or not a string")
	}
	return id, nil
}

func GetUserNameFromClaims(claims jwt.MapClaims) (string, error) {
	name, ok := claims["name"].(string)
	if !ok {
		return "", errors.New("name claim is missing or not a string")
	}
	return name, nil
}
