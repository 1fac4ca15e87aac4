package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"hr-platform-backend/config"
	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware resolves the caller identity from a bearer token and loads
// the user row into the request context. It never rejects by itself: the RPC
// dispatcher decides per method whether an identity is required, so the
// public methods stay reachable. A missing, invalid or unknown-subject token
// all resolve to "no identity".
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Log.Warn("token validation failed", "error", err)
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			logger.Log.Warn("token subject is not a user id", "sub", sub)
			c.Next()
			return
		}

		// Fetch fresh user data so the role is never trusted from the token.
		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			logger.Log.Warn("token subject not found", "user_id", userID)
			c.Next()
			return
		}

		c.Set(string(domain.KeyUser), user)
		c.Next()
	}
}

// UserFromContext returns the resolved caller, or nil when the request
// carried no valid identity.
func UserFromContext(c *gin.Context) *domain.User {
	value, ok := c.Get(string(domain.KeyUser))
	if !ok {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
