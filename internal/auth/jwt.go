package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is what a verified token resolves to: who the caller is and which
// role their token carries.
type Session struct {
	UserID int64
	Role   string
}

// Verifier is the token-verification capability consumed by the middleware.
// It is an interface so tests can swap in a stub instead of minting real
// signed tokens.
type Verifier interface {
	Verify(tokenString string) (*Session, error)
}

// JWT signs and verifies HS256 session tokens carrying a user id and role.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

// GenerateToken creates a signed session token for a user.
// "sub" carries the user ID, "role" the access level. Tokens expire after
// 72 hours.
func (j *JWT) GenerateToken(userID int64, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Verify parses and validates a session token string. Expired, malformed or
// tampered tokens all come back as errors; callers treat any error the same
// as an absent token.
func (j *JWT) Verify(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	// JSON numbers come back as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("invalid subject claim")
	}
	role, _ := claims["role"].(string)

	return &Session{UserID: int64(sub), Role: role}, nil
}
