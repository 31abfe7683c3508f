package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/KingTechFoundation/learn/internal/account/service TokenGenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const opaqueTokenBytes = 32

type TokenGenerator interface {
	GenerateSessionToken(userID, deviceID string) (string, time.Time, error)
	VerifySessionToken(tokenString string) (*SessionClaims, error)
	NewOpaqueToken() (string, error)
	SessionExpiry() time.Duration
}

type TokenService struct {
	Secret          string
	SessionTokenTTL time.Duration
}

// SessionClaims binds a session token to both an account and the device it
// was issued to. The signature proves the claims; it does not prove the
// session is still live.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	DeviceID string `json:"device_id"`
}

func NewTokenService(secret string, sessionMinutes int) *TokenService {
	return &TokenService{
		Secret:          secret,
		SessionTokenTTL: time.Duration(sessionMinutes) * time.Minute,
	}
}

func (ts *TokenService) GenerateSessionToken(userID, deviceID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.SessionTokenTTL)

	claims := SessionClaims{
		UserID:   userID,
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// VerifySessionToken parses and validates the given session token string.
func (ts *TokenService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// NewOpaqueToken returns a random hex token for one-time verification and
// password-reset links. Consumers compare it by exact match against the
// stored value.
func (ts *TokenService) NewOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (ts *TokenService) SessionExpiry() time.Duration {
	return ts.SessionTokenTTL
}
