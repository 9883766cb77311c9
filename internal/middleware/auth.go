package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bilemo/phone-shop-api/internal/config"
	"github.com/bilemo/phone-shop-api/internal/policy"
)

const (
	ContextShopID = "shopID"
	ContextRoles  = "shopRoles"
)

// AuthMiddleware validates the bearer token and stores the caller's
// shop id and effective roles in the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		shopID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		var roles []string
		if rawRoles, ok := claims["roles"].([]interface{}); ok {
			for _, r := range rawRoles {
				if role, ok := r.(string); ok {
					roles = append(roles, role)
				}
			}
		}

		c.Set(ContextShopID, uint(shopID))
		c.Set(ContextRoles, roles)

		c.Next()
	}
}

// CurrentPrincipal rebuilds the principal from the request context so
// handlers can pass it explicitly into policy checks.
func CurrentPrincipal(c *gin.Context) policy.Principal {
	shopID, _ := c.MustGet(ContextShopID).(uint)
	roles, _ := c.MustGet(ContextRoles).([]string)
	return policy.Principal{ShopID: shopID, Roles: roles}
}
