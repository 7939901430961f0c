package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated user identity inside the bearer token.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs a token carrying the user id, valid for the configured
// access window (one hour by default).
func (s *JWTService) Generate(userID uint) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its claims.
// It fails on an invalid signature, an unexpected signing method, or expiry.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// AccessExpMinutes returns the token expiration time in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
