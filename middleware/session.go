package middleware

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("SESSION_SECRET"))

// SessionLoader resolves the session cookie into a user id on the gin
// context. Requests without a valid session proceed anonymously; no
// route is blocked here.
func SessionLoader() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie("shopfront_session")
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			// Expired or tampered cookie; treat as anonymous.
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(float64); ok {
				c.Set("userID", int64(id))
			}
		}

		c.Next()
	}
}

// CurrentUserID reports the signed-in user's id, if any.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
