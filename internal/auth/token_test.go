package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager("secret", 15, 600)

	token, expiresAt, err := tm.GenerateToken("user-1", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expiresAt %v not in the future", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || !claims.Administrator {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 15, 600)
	other := NewTokenManager("different", 15, 600)

	token, _, err := tm.GenerateToken("user-1", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Error("token accepted under a different secret")
	}
}

func TestResetTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager("secret", 15, 600)

	token, err := tm.GenerateResetToken("user-9")
	if err != nil {
		t.Fatalf("generate reset: %v", err)
	}
	userID, err := tm.VerifyResetToken(token)
	if err != nil {
		t.Fatalf("verify reset: %v", err)
	}
	if userID != "user-9" {
		t.Errorf("userID = %q, want user-9", userID)
	}
}

func TestVerifyResetTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", 15, 600)

	claims := &ResetClaims{
		ResetPassword: "user-9",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.VerifyResetToken(token); err == nil {
		t.Error("expired reset token accepted")
	}
}

func TestVerifyResetTokenRejectsWrongMethod(t *testing.T) {
	tm := NewTokenManager("secret", 15, 600)

	claims := &ResetClaims{
		ResetPassword: "user-9",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(tm.secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.VerifyResetToken(token); err == nil {
		t.Error("reset token with unexpected signing method accepted")
	}
}

func TestVerifyResetTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 15, 600)
	if _, err := tm.VerifyResetToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
