package source

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrPrivilegedKey is returned for keys that would bypass row level security.
var ErrPrivilegedKey = errors.New("supabase key is not an anonymous key")

const (
	publishablePrefix = "sb_publishable_"
	secretPrefix      = "sb_secret_"
)

// KeyInfo describes the claims of a Supabase API key. The signature is not
// checked: only the project can verify it, and the storefront only needs to
// know it is not shipping a privileged key.
type KeyInfo struct {
	Role      string
	Ref       string
	ExpiresAt time.Time
}

func (k KeyInfo) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && now.After(k.ExpiresAt)
}

type supabaseClaims struct {
	Role string `json:"role"`
	Ref  string `json:"ref"`
	jwt.RegisteredClaims
}

// InspectAnonKey accepts legacy anon JWTs and the newer publishable keys.
func InspectAnonKey(key string) (KeyInfo, error) {
	key = strings.TrimSpace(key)
	switch {
	case strings.HasPrefix(key, publishablePrefix):
		return KeyInfo{Role: "anon"}, nil
	case strings.HasPrefix(key, secretPrefix):
		return KeyInfo{}, ErrPrivilegedKey
	}

	var claims supabaseClaims
	if _, _, err := jwt.NewParser().ParseUnverified(key, &claims); err != nil {
		return KeyInfo{}, fmt.Errorf("parse supabase key: %w", err)
	}
	info := KeyInfo{Role: claims.Role, Ref: claims.Ref}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if info.Role != "anon" {
		return info, fmt.Errorf("%w: role %q", ErrPrivilegedKey, info.Role)
	}
	return info, nil
}
