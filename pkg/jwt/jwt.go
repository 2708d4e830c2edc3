package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Token purposes. Access and verification tokens live in separate
// namespaces so one can never be replayed as the other.
const (
	purposeAccess      = "access"
	purposeEmailVerify = "email-verify"
)

// AccessClaims represents claims carried by a bearer access token
type AccessClaims struct {
	Username string `json:"username"`
	Purpose  string `json:"purpose"`
	jwt.RegisteredClaims
}

// VerificationClaims represents claims carried by an email verification token
type VerificationClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens
type TokenService struct {
	secret             []byte
	accessExpiry       time.Duration
	verificationMaxAge time.Duration
}

var signJWTToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewTokenService creates a new token service
func NewTokenService(secret string, accessExpiry, verificationMaxAge time.Duration) *TokenService {
	return &TokenService{
		secret:             []byte(secret),
		accessExpiry:       accessExpiry,
		verificationMaxAge: verificationMaxAge,
	}
}

// GenerateAccessToken issues a bearer access token for a user identity
func (s *TokenService) GenerateAccessToken(username string) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		Username: username,
		Purpose:  purposeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signJWTToken(token, s.secret)
}

// ValidateAccessToken validates a bearer token and returns the username
func (s *TokenService) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid || claims.Purpose != purposeAccess {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}

// GenerateVerificationToken issues a short-lived email verification token
func (s *TokenService) GenerateVerificationToken(email string) (string, error) {
	now := time.Now()
	claims := &VerificationClaims{
		Email:   email,
		Purpose: purposeEmailVerify,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.verificationMaxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signJWTToken(token, s.secret)
}

// ValidateVerificationToken validates a verification token and returns the
// email it was issued for. Expired, forged, malformed, and wrong-purpose
// tokens all collapse to the same error kinds.
func (s *TokenService) ValidateVerificationToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VerificationClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*VerificationClaims)
	if !ok || !token.Valid || claims.Purpose != purposeEmailVerify {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secret, nil
}
