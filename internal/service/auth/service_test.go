package auth

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/passlog/pkg/config"
)

func newTestAuth(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(
		config.AdminConfig{Username: "admin", PasswordHash: string(hash)},
		config.JWTConfig{Secret: "test-secret", Issuer: "passlog-test", AccessTokenDuration: time.Hour},
		zap.NewNop(),
	)
	return svc.(*Service)
}

func TestLoginAndValidate_RoundTrip(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	sub, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if sub != "admin" {
		t.Errorf("subject = %q, want admin", sub)
	}
}

func TestLogin_Rejections(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := svc.Login(ctx, "root", "correct horse"); err == nil {
		t.Error("unknown username accepted")
	}
}

func TestValidateToken_Rejections(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	if _, err := svc.ValidateToken(ctx, "not.a.jwt"); err == nil {
		t.Error("garbage token accepted")
	}

	// Token signed with a different secret must fail.
	other := newTestAuth(t)
	other.jwtSecret = []byte("another secret")
	token, err := other.Login(ctx, "admin", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateToken(ctx, token); err == nil {
		t.Error("token with foreign signature accepted")
	}
}
