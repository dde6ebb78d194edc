//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"styledecor/internal/domain/user"
	"styledecor/internal/pkg/config"
	"styledecor/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p user.Principal) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(p)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, p user.Principal) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(p)
	require.NoError(t, err)
	return token
}

// Customer, Decorator and Admin are the principals the e2e suites act as.
func Customer(email string) user.Principal {
	return user.Principal{Email: email, DisplayName: "Test Customer", Role: user.RoleCustomer}
}

func Decorator(email string) user.Principal {
	return user.Principal{Email: email, DisplayName: "Test Decorator", Role: user.RoleDecorator}
}

func Admin(email string) user.Principal {
	return user.Principal{Email: email, DisplayName: "Test Admin", Role: user.RoleAdmin}
}
