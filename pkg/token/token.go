package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// SessionInfo describes the session a token should reference. The token never
// carries identity claims, only the server-side session id.
type SessionInfo struct {
	SessionID  string
	Expiration time.Duration
}

type Service struct {
	secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{
		secret: secret,
	}
}

func (s *Service) Generate(data SessionInfo) *jwt.Token {
	claims := jwt.MapClaims{
		"jti": data.SessionID,
		"iat": TimeNow().Unix(),
		"exp": TimeNow().Add(data.Expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (s *Service) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate checks the signature and expiry and returns the session id.
func (s *Service) Validate(token string) (string, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", fmt.Errorf("jwt parse: %w: %w", err, ErrTokenExpired)
		}
		return "", fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return "", ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("jwt claims type assertion failed")
	}

	if expVal, ok := claims["exp"].(float64); ok {
		if int64(expVal) < TimeNow().Unix() {
			return "", fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
		}
	}

	sessionID, ok := claims["jti"].(string)
	if !ok || sessionID == "" {
		return "", ErrTokenNotValid
	}

	return sessionID, nil
}
