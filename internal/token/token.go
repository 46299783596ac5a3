package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
)

// DefaultSize is the number of random bytes in a key, rendered as 40 hex characters.
const DefaultSize = 20

var (
	ErrMissingHeader = errors.New("authorization header missing")
	ErrInvalidHeader = errors.New("invalid authorization header format")
)

// Token generates opaque API keys and extracts them from requests.
type Token struct {
	size   int       // Number of random bytes per key
	random io.Reader // Entropy source
}

// Opt configures a Token.
type Opt func(*Token)

// WithSize sets the number of random bytes per key.
func WithSize(size int) Opt {
	return func(t *Token) {
		t.size = size
	}
}

// WithRandom replaces the entropy source, mainly for tests.
func WithRandom(r io.Reader) Opt {
	return func(t *Token) {
		t.random = r
	}
}

// New creates a Token with crypto/rand and DefaultSize unless overridden.
func New(opts ...Opt) *Token {
	t := &Token{
		size:   DefaultSize,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Generate returns a new hex-encoded random key.
func (t *Token) Generate(ctx context.Context) (string, error) {
	buf := make([]byte, t.size)
	if _, err := io.ReadFull(t.random, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GetTokenFromRequest extracts the key from the Authorization header.
// Both "Bearer <key>" and "Token <key>" schemes are accepted, case-insensitively.
func (t *Token) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 {
		return "", ErrInvalidHeader
	}
	switch strings.ToLower(parts[0]) {
	case "bearer", "token":
		return parts[1], nil
	default:
		return "", ErrInvalidHeader
	}
}
