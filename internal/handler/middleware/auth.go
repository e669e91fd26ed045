package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-rental-engine/internal/handler/httperr"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/pkg/jwt"
	"car-rental-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken = errs.New("access token required")
	errNotAdmin     = errs.New("admin role required")
)

// TokenVerifier checks bearer tokens issued by the auth service.
type TokenVerifier interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.verifier.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetIdentity(c, claims.UserID, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}
		if role != jwt.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < len("Bearer ") || !strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// SetIdentity stores the caller on the context; tests use it to stub authentication.
func SetIdentity(c *gin.Context, userID uuid.UUID, role jwt.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (jwt.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(jwt.Role)
	return role, ok
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, _ := GetUserRole(c)
	return shared.Actor{UserID: id, IsAdmin: role == jwt.RoleAdmin}, true
}
