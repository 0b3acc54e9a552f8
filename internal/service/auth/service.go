package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/passlog/internal/ports"
	"github.com/seu-repo/passlog/pkg/config"
)

// Service authenticates the single administrative account configured for the
// deployment and issues short-lived HS256 access tokens for the admin API.
type Service struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
	issuer       string
	log          *zap.Logger
}

func NewService(admin config.AdminConfig, jwtCfg config.JWTConfig, log *zap.Logger) ports.AuthService {
	ttl := jwtCfg.AccessTokenDuration
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Service{
		username:     admin.Username,
		passwordHash: []byte(admin.PasswordHash),
		jwtSecret:    []byte(jwtCfg.Secret),
		tokenTTL:     ttl,
		issuer:       jwtCfg.Issuer,
		log:          log,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iss": s.issuer,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	s.log.Info("Admin login", zap.String("username", username))
	return signed, nil
}

func (s *Service) ValidateToken(ctx context.Context, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub != s.username {
		return "", errors.New("invalid subject")
	}
	return sub, nil
}
