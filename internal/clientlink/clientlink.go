package clientlink

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const audience = "booking-client"

var ErrInvalidToken = errors.New("invalid client link token")

// Link is a shareable URL to the client-facing booking app.
type Link struct {
	URL       string
	Token     string
	ExpiresAt time.Time
}

// Issuer signs short-lived HS256 tokens and appends them to the client app URL.
type Issuer struct {
	baseURL string
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewIssuer(baseURL, secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		baseURL: baseURL,
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (i *Issuer) Issue() (Link, error) {
	u, err := url.Parse(i.baseURL)
	if err != nil {
		return Link{}, fmt.Errorf("parse client app url: %w", err)
	}

	now := i.now()
	exp := now.Add(i.ttl)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Link{}, fmt.Errorf("sign client link: %w", err)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return Link{
		URL:       u.String(),
		Token:     token,
		ExpiresAt: exp,
	}, nil
}

// Verify checks signature, audience and expiry, returning the link id.
func (i *Issuer) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	},
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	return claims.ID, nil
}
