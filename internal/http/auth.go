package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/logging"
)

type userKey struct{}

// UserFromContext returns the authenticated caller if present.
func UserFromContext(ctx context.Context) (domain.UserContext, bool) {
	if ctx == nil {
		return domain.UserContext{}, false
	}
	user, ok := ctx.Value(userKey{}).(domain.UserContext)
	return user, ok
}

func withUser(ctx context.Context, user domain.UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// AuthConfig configures bearer-token authentication. DemoToken, when
// set, grants a fixed demo identity without a signed JWT.
type AuthConfig struct {
	Secret    string
	DemoToken string
}

// AuthMiddleware authenticates requests via HS256 JWTs or the demo
// token. Requests without valid credentials are rejected before any
// service code runs.
type AuthMiddleware struct {
	cfg    AuthConfig
	logger *slog.Logger
}

// NewAuthMiddleware builds the middleware.
func NewAuthMiddleware(cfg AuthConfig, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, logger: logger}
}

// Middleware is the mux-compatible wrapper.
func (a *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		if a.cfg.DemoToken != "" && token == a.cfg.DemoToken {
			ctx := withUser(r.Context(), domain.UserContext{
				UserID: "demo-user",
				Email:  "demo@example.com",
			})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		user, err := a.parseToken(token)
		if err != nil {
			logging.Warn(logging.FromContext(r.Context(), a.logger), "rejected token", "error", err)
			unauthorized(w, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

func (a *AuthMiddleware) parseToken(tokenStr string) (domain.UserContext, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(a.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return domain.UserContext{}, err
	}
	if !token.Valid {
		return domain.UserContext{}, jwt.ErrTokenUnverifiable
	}

	user := domain.UserContext{
		UserID: toString(claims["sub"]),
		Email:  toString(claims["email"]),
	}
	if user.UserID == "" {
		return domain.UserContext{}, jwt.ErrTokenInvalidSubject
	}
	return user, nil
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
