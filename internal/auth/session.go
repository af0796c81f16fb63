package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/naf3/admin-console-api/internal/domain"
)

// tokenKeyPaths are the candidate locations of the bearer token in the
// upstream login response, probed in order. The backend has shipped all four
// shapes at different times.
var tokenKeyPaths = [][]string{
	{"token"},
	{"accessToken"},
	{"data", "token"},
	{"data", "accessToken"},
}

// ExtractToken locates the bearer token in a decoded login response. Returns
// an empty string when no candidate path holds a non-empty string.
func ExtractToken(raw any) string {
	rec, ok := raw.(map[string]any)
	if !ok {
		return ""
	}
	for _, path := range tokenKeyPaths {
		current := rec
		for i, key := range path {
			if i == len(path)-1 {
				if token, ok := current[key].(string); ok && token != "" {
					return token
				}
				break
			}
			next, ok := current[key].(map[string]any)
			if !ok {
				break
			}
			current = next
		}
	}
	return ""
}

// NewSession builds the console session from a decoded login response. The
// token is treated as opaque session state, but when it happens to be a JWT
// its display claims (role, email) are surfaced for the console header. No
// signature verification happens here; authorization is enforced upstream.
func NewSession(raw any) domain.Session {
	session := domain.Session{Token: ExtractToken(raw)}
	if rec, ok := raw.(map[string]any); ok {
		session.Raw = rec
		if role, ok := rec["role"].(string); ok {
			session.Role = role
		}
		if email, ok := rec["email"].(string); ok {
			session.Email = email
		}
	}
	if session.Token != "" {
		role, email := displayClaims(session.Token)
		if session.Role == "" {
			session.Role = role
		}
		if session.Email == "" {
			session.Email = email
		}
	}
	return session
}

// displayClaims parses the token without verifying it and pulls out the
// role/email claims when present.
func displayClaims(token string) (role, email string) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return "", ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ""
	}
	role, _ = claims["role"].(string)
	email, _ = claims["email"].(string)
	return role, email
}

// SessionFromToken rebuilds display state from a bearer token alone, used by
// the /auth/me endpoint.
func SessionFromToken(token string) domain.Session {
	role, email := displayClaims(token)
	return domain.Session{Token: token, Role: role, Email: email}
}
