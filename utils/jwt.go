package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"xoadvisor/config"

	"github.com/golang-jwt/jwt"
)

// devSecret is used only when JWT_SECRET is unset outside production.
const devSecret = "xoadvisor-dev-secret"

func secretKey() []byte {
	if config.AppConfig.JWTSecret == "" {
		return []byte(devSecret)
	}
	return []byte(config.AppConfig.JWTSecret)
}

// TokenClaims are the identity fields carried by a session token.
type TokenClaims struct {
	Subject   string
	Email     string
	SessionID string
}

// GenerateToken creates a signed JWT for the identity and session. The token
// expires after the given duration.
func GenerateToken(subject, email, sessionID string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"sid":   sessionID,
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseToken validates tokenString and extracts its identity claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	sid, _ := claims["sid"].(string)
	if sub == "" || sid == "" {
		return nil, errors.New("token does not carry a subject and session")
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{Subject: sub, Email: email, SessionID: sid}, nil
}
