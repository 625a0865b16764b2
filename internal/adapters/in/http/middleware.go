package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key holding the authenticated user name.
const actorContextKey = "actor"

// ActorMiddleware authenticates console requests with a bearer JWT and makes
// the acting user's name available to handlers. Audit fields such as
// cancelledBy are stamped from this identity rather than from anything the
// client puts in a request body.
func ActorMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Missing bearer token",
				})
			}

			actor, err := actorFromToken(token, secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Invalid bearer token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromToken(token, secret string) (string, error) {
	claims := jwt.MapClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", jwt.ErrTokenRequiredClaimMissing
	}

	return subject, nil
}

// Actor returns the authenticated user name set by ActorMiddleware, or empty
// when the route was not behind it.
func Actor(ctx echo.Context) string {
	actor, _ := ctx.Get(actorContextKey).(string)
	return actor
}
