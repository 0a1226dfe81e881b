package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/schuelerstaat/statebank/internal/ledger"
)

// Claims is the JWT payload of a session. Subject carries the encoded user
// signature, so the middleware can rebuild it without a lookup.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens mints and verifies HS256 session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Issue(p *Principal) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Signature.Encode(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			Issuer:    "statebank",
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses token and returns the signature and role it vouches for.
func (t *Tokens) Verify(token string) (ledger.UserSignature, Role, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ledger.UserSignature{}, "", fmt.Errorf("parsing token: %w", err)
	}

	if !parsed.Valid {
		return ledger.UserSignature{}, "", fmt.Errorf("invalid token")
	}

	sig, err := ledger.DecodeUserSignature(claims.Subject)
	if err != nil {
		return ledger.UserSignature{}, "", fmt.Errorf("decoding token subject: %w", err)
	}

	return sig, claims.Role, nil
}
