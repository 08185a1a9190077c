package auth

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
)

// contextKey is where verified claims are stored on the echo context.
const contextKey = "user"

var errTokenRequired = errors.New("authorization token is required")

// VerifyToken returns middleware that extracts a bearer token from the
// Authorization header, validates it and attaches the claims to the request
// context. The "Bearer " prefix is optional; clients that send the raw token
// are tolerated. Missing or invalid tokens are rejected with 401.
func VerifyToken(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       contextKey,
		TokenLookupFuncs: []middleware.ValuesExtractor{bearerToken},
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := "Unauthorized: Invalid token."
			if errors.Is(err, errTokenRequired) {
				msg = "Authorization token is required."
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: msg,
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireAdmin rejects requests whose verified claims do not carry the admin
// role. It must run after VerifyToken. It never mutates state; a passing
// request reaches the wrapped handler untouched.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Unauthorized: Invalid token.",
				Code:  "UNAUTHORIZED",
			})
		}
		if claims.Roles != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "Unauthorized: Only admins can perform this action.",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// ClaimsFromContext returns the claims attached by VerifyToken.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(contextKey).(*Claims)
	return claims, ok
}

func bearerToken(c echo.Context) ([]string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, errTokenRequired
	}
	return []string{strings.TrimPrefix(header, "Bearer ")}, nil
}
