package formsign

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies short-lived form tokens. Every GET that
// renders a form hands one out; the matching POST must send it back, so a
// submission forged without the secret fails validation.
type TokenService struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (ts TokenService) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    ts.Issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.TTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(ts.Secret)
	if err != nil {
		return "", fmt.Errorf("sign form token: %w", err)
	}
	return s, nil
}

func (ts TokenService) Verify(tokenString string) error {
	tok, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// enforce HS256
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.Secret, nil
	}, jwt.WithIssuer(ts.Issuer))
	if err != nil {
		return fmt.Errorf("parse form token: %w", err)
	}
	if !tok.Valid {
		return fmt.Errorf("invalid form token")
	}
	return nil
}
