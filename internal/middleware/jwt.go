package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "forklift-dev-secret" // fallback for local development only
}

// Claims carried in every issued token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a 24h HS256 token for the given user.
func GenerateToken(userID uint, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a token string, returning its claims.
func ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// authenticate verifies the bearer token and stores the claims in the
// gin context under "user_id" and "role". Aborts the request on failure.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false, "error": "Missing or invalid Authorization header",
		})
		return false
	}

	claims, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		msg := "Invalid or expired token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token has expired, please login again"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
		return false
	}

	c.Set("user_id", claims.UserID)
	c.Set("role", claims.Role)
	return true
}

// RequireAuth ensures a valid bearer token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAuthWithRole ensures a valid token whose role is one of the
// allowed roles.
func RequireAuthWithRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		role := c.GetString("role")
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false, "error": "Insufficient permissions",
		})
	}
}
