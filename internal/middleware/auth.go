package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"clinic-backoffice/internal/model"
	"clinic-backoffice/pkg/response"
)

// Claims is the token payload issued to clinic staff.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies the bearer token and stores the caller's Scope in the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c)
			return
		}

		sc, err := m.verify(raw)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func (m Middleware) verify(raw string) (model.Scope, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return model.Scope{}, err
	}
	if claims.Subject == "" {
		return model.Scope{}, jwt.ErrTokenInvalidSubject
	}
	return model.Scope{UserID: claims.Subject, Role: claims.Role}, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// SignToken issues an HS256 token for a staff member. Used by operator
// tooling and tests.
func SignToken(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
