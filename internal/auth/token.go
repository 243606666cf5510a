package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager handles issuing and validating JWT tokens: bearer access
// tokens and the short-lived signed tokens used for password resets.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	resetTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes, resetTTLSeconds int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	if resetTTLSeconds <= 0 {
		resetTTLSeconds = 600
	}
	return &TokenManager{
		secret:   []byte(secret),
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		resetTTL: time.Duration(resetTTLSeconds) * time.Second,
	}
}

// Claims describes the access token payload.
type Claims struct {
	UserID        string `json:"sub"`
	Administrator bool   `json:"administrator"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs an access token for the user.
func (tm *TokenManager) GenerateToken(userID string, administrator bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.ttl)
	claims := &Claims{
		UserID:        userID,
		Administrator: administrator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ResetClaims embeds the user identifier for password resets.
type ResetClaims struct {
	ResetPassword string `json:"reset_password"`
	jwt.RegisteredClaims
}

// GenerateResetToken signs a time-limited password reset token for the user.
func (tm *TokenManager) GenerateResetToken(userID string) (string, error) {
	claims := &ResetClaims{
		ResetPassword: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.resetTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// VerifyResetToken returns the embedded user id when the token's signature
// and expiry check out. Any failure is reported uniformly so callers do not
// leak why a token was rejected.
func (tm *TokenManager) VerifyResetToken(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &ResetClaims{}, tm.keyFunc)
	if err != nil {
		return "", errors.New("invalid reset token")
	}
	claims, ok := parsed.Claims.(*ResetClaims)
	if !ok || !parsed.Valid || claims.ResetPassword == "" {
		return "", errors.New("invalid reset token")
	}
	return claims.ResetPassword, nil
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return tm.secret, nil
}
