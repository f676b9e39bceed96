package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/clientdesk/internal/timex"
)

// ParseExpiration turns the expiration string returned on login into a time.
// When the string cannot be parsed, the exp claim of the (unverified) JWT is
// used instead. ok is false when neither yields a time.
func ParseExpiration(raw string, token string) (time.Time, bool) {
	if t, ok := timex.ParseServerTime(raw); ok {
		return t, true
	}
	return expirationFromToken(token)
}

func expirationFromToken(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
