package middleware

import (
	"net/http"
	"time"

	"myevent-api/core/cache"
	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	tokens *utils.TokenManager
	cache  cache.Cache
}

func NewMiddleware(tokens *utils.TokenManager, c cache.Cache) *Middleware {
	return &Middleware{tokens: tokens, cache: c}
}

// AuthMiddleware requires a valid, non-revoked access token and stores its
// claims under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.authenticate(c); err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, err.Code, err.Message)
			}
			return next(c)
		}
	}
}

// OptionalAuth attaches claims when a valid token is present and lets
// anonymous requests through untouched.
func (m *Middleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := utils.GetTokenFromRequest(c); err == nil {
				if appErr := m.authenticate(c); appErr != nil {
					logger.Debug("Middleware:OptionalAuth:Ignored", "reason", appErr.Message)
				}
			}
			return next(c)
		}
	}
}

// RequireRole must run after AuthMiddleware.
func (m *Middleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetTokenClaims(c)
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "No autenticado")
			}
			if claims.Role != role {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "Acceso denegado")
			}
			return next(c)
		}
	}
}

func (m *Middleware) authenticate(c echo.Context) *errors.AppError {
	token, err := utils.GetTokenFromRequest(c)
	if err != nil {
		return errors.NewAppError(errors.ErrMissingAuthorizationHeader, "No autenticado", err)
	}

	claims, err := m.tokens.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "Token inválido", err)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "Token inválido", nil)
	}

	revoked, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
	if err != nil {
		logger.Error("Middleware:Authenticate:IsTokenBlacklisted:Error:", err)
		return errors.NewAppError(errors.ErrUnauthorized, "No autenticado", err)
	}
	if revoked {
		return errors.NewAppError(errors.ErrTokenExpired, "Sesión cerrada", nil)
	}

	c.Set(constants.ContextTokenData, claims)
	c.Set(constants.ContextRawToken, token)
	return nil
}

func GetTokenClaims(c echo.Context) (*utils.TokenClaims, bool) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	return claims, ok && claims != nil
}

// GetUserID returns the authenticated user's id, uuid.Nil for anonymous requests.
func GetUserID(c echo.Context) uuid.UUID {
	if claims, ok := GetTokenClaims(c); ok {
		return claims.UserID
	}
	return uuid.Nil
}

func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			logger.Info("HTTP:Request",
				"method", req.Method,
				"path", c.Path(),
				"uri", req.RequestURI,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
			)
			return nil
		}
	}
}
