package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"onlyflans/internal/config"
	userdomain "onlyflans/internal/domain/user"
	"onlyflans/pkg/logger"
)

const TokenCookieName = "onlyflans_token"

type contextKey int

const (
	userKey contextKey = iota
)

type User struct {
	ID       uint
	Username string
	Email    string
	Name     string
}

type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type UserEnsurer interface {
	EnsureUser(ctx context.Context, username, email, name string) (*userdomain.User, error)
}

type JWTAuth struct {
	secret   []byte
	users    UserEnsurer
	skipAuth bool
	mockUser Claims
	log      logger.Logger
}

func NewJWTAuth(cfg config.AuthConfig, users UserEnsurer, log logger.Logger) *JWTAuth {
	return &JWTAuth{
		secret:   []byte(cfg.JWTSecret),
		users:    users,
		skipAuth: cfg.SkipAuth,
		mockUser: Claims{
			Email:            strings.TrimSpace(cfg.MockUserEmail),
			Name:             strings.TrimSpace(cfg.MockUserName),
			RegisteredClaims: jwt.RegisteredClaims{Subject: strings.TrimSpace(cfg.MockUsername)},
		},
		log: log,
	}
}

// Middleware rejects requests without a valid token.
func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authenticate(r)
		if err != nil {
			if errors.Is(err, errAuthNotConfigured) {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
				return
			}
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// Optional attaches the user when a valid token is present and lets every request through.
func (a *JWTAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authenticate(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

var (
	errAuthNotConfigured = errors.New("auth not configured")
	errNoToken           = errors.New("no token")
)

func (a *JWTAuth) authenticate(r *http.Request) (User, error) {
	var claims Claims
	if a.skipAuth {
		claims = a.mockUser
		if claims.Subject == "" {
			return User{}, errAuthNotConfigured
		}
	} else {
		if len(a.secret) == 0 {
			return User{}, errAuthNotConfigured
		}
		token, ok := requestToken(r)
		if !ok {
			return User{}, errNoToken
		}
		parsed, err := ParseToken(a.secret, token)
		if err != nil {
			a.log.BusinessError("auth: invalid token", err, "path", r.URL.Path)
			return User{}, err
		}
		claims = *parsed
	}

	user := User{Username: claims.Subject, Email: claims.Email, Name: claims.Name}
	if a.users != nil {
		stored, err := a.users.EnsureUser(r.Context(), user.Username, user.Email, user.Name)
		if err != nil {
			a.log.InternalError("auth: ensure user failed", err, "username", user.Username)
			return User{}, err
		}
		user.ID = stored.ID
		user.Email = stored.Email
		user.Name = stored.Name
	}
	return user, nil
}

// IssueToken signs an HS256 token for username valid for ttl.
func IssueToken(secret string, username, email, name string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errAuthNotConfigured
	}
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("username is required")
	}
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(secret []byte, token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return &claims, nil
}

func requestToken(r *http.Request) (string, bool) {
	if token, ok := bearerToken(r.Header.Get("Authorization")); ok {
		return token, true
	}
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(User)
	if !ok || user.Username == "" {
		return User{}, false
	}
	return user, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
