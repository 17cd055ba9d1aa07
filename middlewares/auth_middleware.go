package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/kaanx03/NutriTrack-sub001/config"
	"github.com/kaanx03/NutriTrack-sub001/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated caller, parsed once per request from the
// bearer token and carried explicitly in the gin context. Tokens are issued
// by the external auth service; this backend only validates them.
type Session struct {
	UserID uint
	Email  string
	Role   string // "user" | "admin" | "service"
}

const sessionKey = "session"

// SessionFrom returns the request's Session. Only valid behind AuthMiddleware.
func SessionFrom(c *gin.Context) Session {
	return c.MustGet(sessionKey).(Session)
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		sess := Session{Role: "user"}
		if r, _ := claims["role"].(string); r != "" {
			sess.Role = r
		}
		if e, _ := claims["email"].(string); e != "" {
			sess.Email = e
		}

		// Prefer the userId claim; fall back to an email lookup.
		if v, ok := claims["userId"].(float64); ok {
			sess.UserID = uint(v)
		} else if sess.Email != "" {
			var user models.User
			if err := config.DB.Where("email = ?", sess.Email).First(&user).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			sess.UserID = user.ID
		}

		// Service tokens act on behalf of other users and carry no userId.
		if sess.UserID == 0 && sess.Role != "service" && sess.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "userId claim missing"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireAdmin gates the admin rollup endpoints. Runs behind AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess.Role != "admin" && sess.Role != "service" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
