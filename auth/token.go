package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what rides in every session token: the session id the
// store keys cart/user state by, the role, and the email for logged-in users.
type SessionClaims struct {
	SessionID string
	Role      string
	Email     string
}

// IssueToken signs a session token. Sessions last a week; guests a day.
func IssueToken(claims SessionClaims) (string, error) {
	ttl := 7 * 24 * time.Hour
	if claims.Role == "guest" {
		ttl = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": claims.SessionID,
		"role":       claims.Role,
		"email":      claims.Email,
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken validates a session token and extracts its claims.
func ParseToken(tokenString string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return SessionClaims{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, errors.New("invalid token claims")
	}

	out := SessionClaims{}
	if v, ok := claims["session_id"].(string); ok {
		out.SessionID = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if out.SessionID == "" {
		return SessionClaims{}, errors.New("token has no session")
	}
	return out, nil
}
