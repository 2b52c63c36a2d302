package v1

import (
	"strconv"
	"strings"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie the session token is stored in for
// browser clients. API clients can send the token as a bearer token
// instead.
const SessionCookieName = "session"

// contextUserID is the gin context key the authenticated user ID is
// stored under.
const contextUserID = "centsible-user-id"

var (
	sessionSecret   []byte
	sessionLifetime time.Duration
)

type sessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// newSessionToken issues a signed session token for the user.
func newSessionToken(userID uint) (string, error) {
	now := time.Now().In(time.UTC)

	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessionSecret)
}

// parseSessionToken verifies the token and returns the user ID it was
// issued for.
func parseSessionToken(token string) (uint, error) {
	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errSessionInvalid
		}

		return sessionSecret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errSessionInvalid
	}

	return claims.UserID, nil
}

// RequireSession rejects requests without a valid session token with
// HTTP 401.
//
// The token is read from the Authorization header or, for browser
// clients, from the session cookie. The user the token was issued for
// must still exist.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookieName); err == nil {
			token = cookie
		}

		if token == "" {
			c.AbortWithStatusJSON(status(errNoSession), httpError{Error: errNoSession.Error()})
			return
		}

		userID, err := parseSessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		var user models.User
		err = models.DB.First(&user, userID).Error
		if err != nil {
			c.AbortWithStatusJSON(status(errSessionInvalid), httpError{Error: errSessionInvalid.Error()})
			return
		}

		c.Set(contextUserID, user.ID)
		c.Next()
	}
}

// currentUserID returns the ID of the authenticated user.
func currentUserID(c *gin.Context) uint {
	return c.GetUint(contextUserID)
}
