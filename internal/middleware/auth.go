package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aactechsol/massage-manager/internal/config"
)

const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"

	AuthCookie = "auth"
)

// AuthMiddleware accepts the session token from a bearer header or the auth
// cookie. Anything unauthenticated is sent to the login entry point with the
// requested destination preserved, so the client can resume it after signing
// in.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie(AuthCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			redirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			redirectToLogin(c)
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			redirectToLogin(c)
			return
		}
		isAdmin, _ := claims["admin"].(bool)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextIsAdmin, isAdmin)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusSeeOther, "/login?next="+next)
	c.Abort()
}
