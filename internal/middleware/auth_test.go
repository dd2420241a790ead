package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/gradeup-ai/gradeup-mvp/internal/config"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

func newGuardedApp(cfg config.AuthConfig, tokens services.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthorizationRequired(cfg, tokens), func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.JSON(identity)
	})
	return app
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthorizationRequired(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		EnforceExpiry: true,
	}
	identity := services.Identity{Email: "a@acme.com", Kind: services.KindCompany, UserID: 3}

	t.Run(`valid token reaches the handler with its identity`, func(t *testing.T) {
		tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, true)
		app := newGuardedApp(cfg, tokens)

		token, err := tokens.Issue(identity)
		require.NoError(t, err)

		resp, err := app.Test(requestWithToken(token), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`missing and malformed tokens are rejected`, func(t *testing.T) {
		tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, true)
		app := newGuardedApp(cfg, tokens)

		resp, err := app.Test(requestWithToken(""), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.Test(requestWithToken("not-a-jwt"), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`expired token is rejected when enforcement is on`, func(t *testing.T) {
		expiredIssuer := services.NewTokenService(cfg.JWTSecret, -time.Minute, true)
		app := newGuardedApp(cfg, expiredIssuer)

		token, err := expiredIssuer.Issue(identity)
		require.NoError(t, err)

		resp, err := app.Test(requestWithToken(token), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`expired token passes when enforcement is off`, func(t *testing.T) {
		relaxed := cfg
		relaxed.EnforceExpiry = false
		tokens := services.NewTokenService(relaxed.JWTSecret, -time.Minute, false)
		app := newGuardedApp(relaxed, tokens)

		token, err := tokens.Issue(identity)
		require.NoError(t, err)

		resp, err := app.Test(requestWithToken(token), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`wrong signature is rejected even with enforcement off`, func(t *testing.T) {
		relaxed := cfg
		relaxed.EnforceExpiry = false
		tokens := services.NewTokenService(relaxed.JWTSecret, time.Hour, false)
		app := newGuardedApp(relaxed, tokens)

		other := services.NewTokenService("other-secret", time.Hour, false)
		token, err := other.Issue(identity)
		require.NoError(t, err)

		resp, err := app.Test(requestWithToken(token), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}
