package middleware

import (
	"log/slog"
	"net/http"

	"tour-booking-console/internal/domain/operator"
	"tour-booking-console/internal/handler/httperr"
	"tour-booking-console/internal/pkg/authctx"
	"tour-booking-console/internal/pkg/cookie"
	"tour-booking-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxOperatorKey = "operator"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth validates the operator token and forwards it to the booking
// backend through the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.RequestToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		op, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserRoleKey, op.Role)
		c.Set(ctxOperatorKey, op)
		c.Request = c.Request.WithContext(authctx.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole operator.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetOperator(c *gin.Context) (usecase.Operator, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return usecase.Operator{}, false
	}
	op, ok := v.(usecase.Operator)
	return op, ok
}

func GetUserRole(c *gin.Context) (operator.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(operator.Role)
	return role, ok
}
