package http

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	actorIDKey   = "actorID"
	actorRoleKey = "actorRole"
)

// AuthMiddleware parses the bearer token and stores the actor's identity and
// role on the request context. Handlers receive the actor explicitly; there
// is no hidden request-scoped identity beyond these two values.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token claims"})
			}

			subject, _ := claims["sub"].(string)
			actorID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid subject claim"})
			}

			roleName, _ := claims["role"].(string)
			role, ok := user.RoleFromString(roleName)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid role claim"})
			}

			ctx.Set(actorIDKey, actorID)
			ctx.Set(actorRoleKey, role)
			return next(ctx)
		}
	}
}

// actorFromContext returns the authenticated actor placed there by
// AuthMiddleware.
func actorFromContext(ctx echo.Context) (kernel.UUID, user.Role, bool) {
	actorID, ok := ctx.Get(actorIDKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, user.RoleUnknown, false
	}
	role, ok := ctx.Get(actorRoleKey).(user.Role)
	if !ok {
		return kernel.UUID{}, user.RoleUnknown, false
	}
	return actorID, role, true
}

// RateLimitMiddleware applies a token-bucket limit per client IP.
func RateLimitMiddleware(limit rate.Limit, burst int) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters[ip] = limiter
		}
		return limiter
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !limiterFor(ctx.RealIP()).Allow() {
				return ctx.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			}
			return next(ctx)
		}
	}
}
