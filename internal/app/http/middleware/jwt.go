package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"restriction-app/config"
	"restriction-app/internal/domain/restriction"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a valid bearer token and stores the decoded
// identity on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware decodes a bearer token when present but lets
// anonymous requests through. Page delivery uses it: anonymous
// visitors are a valid identity (logged_out policies exist).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			// A bad token does not block delivery; the requester is
			// simply anonymous.
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRole gates a route group on a direct role assignment. Role
// names compare case-insensitively, same as the visibility evaluator;
// assignments preserve the author's casing.
func RequireRole(role string) gin.HandlerFunc {
	role = strings.ToLower(role)
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		for _, r := range identity.Roles {
			if strings.ToLower(r) == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		c.Abort()
	}
}

// IdentityFrom rebuilds the restriction identity stored by the auth
// middleware. Unauthenticated requests map to the zero identity.
func IdentityFrom(c *gin.Context) restriction.Identity {
	if v, ok := c.Get("identity"); ok {
		if id, ok := v.(restriction.Identity); ok {
			return id
		}
	}
	return restriction.Identity{}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	jwtKey := []byte(config.JWT_SECRET)
	if len(jwtKey) == 0 {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) {
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if userIDFloat, ok := claims["user_id"].(float64); ok {
		c.Set("user_id", uint(userIDFloat))
	}

	identity := restriction.Identity{Authenticated: true}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if name, ok := r.(string); ok {
				identity.Roles = append(identity.Roles, name)
			}
		}
	}
	if bypass, ok := claims["bypass"].(bool); ok {
		identity.BypassRestrictions = bypass
	}
	c.Set("identity", identity)
}
