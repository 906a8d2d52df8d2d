package handlers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("SESSION_SECRET"))

const sessionCookie = "shopfront_session"

func generateToken(id int64, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, 3600*24*7, "/", "", false, true) // HttpOnly=true, Secure=false (dev)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
