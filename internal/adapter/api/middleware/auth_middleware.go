package middleware

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"shareheart/pkg/errors"
	"shareheart/pkg/response"
)

const (
	ContextUID   = "uid"
	ContextToken = "token"
)

// TokenVerifier is satisfied by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateWebSocket also accepts ?token=, since browsers cannot set
// headers on a WebSocket handshake.
func (m *AuthMiddleware) AuthenticateWebSocket(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken, err := bearerToken(c.Request().Header.Get("Authorization"))
		if err != nil && allowQuery {
			if q := c.QueryParam("token"); q != "" {
				idToken, err = q, nil
			}
		}
		if err != nil {
			return response.Error(c, err)
		}

		token, verr := m.verifier.VerifyIDToken(c.Request().Context(), idToken)
		if verr != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", verr))
		}

		c.Set(ContextUID, token.UID)
		c.Set(ContextToken, token)
		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.Unauthorized("Authorization header is required", nil)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", errors.Unauthorized("Invalid authorization format", nil)
	}
	return strings.TrimSpace(parts[1]), nil
}

// UID returns the authenticated user id set by Authenticate.
func UID(c echo.Context) string {
	uid, _ := c.Get(ContextUID).(string)
	return uid
}

// Token returns the verified ID token set by Authenticate, or nil.
func Token(c echo.Context) *auth.Token {
	token, _ := c.Get(ContextToken).(*auth.Token)
	return token
}
