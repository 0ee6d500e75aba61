package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/phrazzld/post-api/internal/api/shared"
	"github.com/phrazzld/post-api/internal/platform/logger"
	"github.com/phrazzld/post-api/internal/store"
)

// apiKeyPattern matches the Api-Key authorization scheme: the scheme
// literal (case-insensitive), a whitespace run, then exactly one
// non-whitespace credential and nothing else.
var apiKeyPattern = regexp.MustCompile(`(?i)^api-key\s+(\S+)$`)

// AuthMiddleware gates every request on a static API-key check against
// the token store. Rejection short-circuits the rest of the pipeline
// with a 401 and an empty body; the response never distinguishes a
// malformed credential from an unknown one.
type AuthMiddleware struct {
	tokens store.TokenStore
	logger *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens store.TokenStore, log *slog.Logger) *AuthMiddleware {
	if tokens == nil {
		panic("token store cannot be nil for AuthMiddleware")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AuthMiddleware{
		tokens: tokens,
		logger: log.With(slog.String("component", "auth_middleware")),
	}
}

// extractAPIKey pulls the credential out of an Authorization header
// value. It returns an empty string when the header is absent or does
// not match the Api-Key scheme.
func extractAPIKey(headerValue string) string {
	match := apiKeyPattern.FindStringSubmatch(headerValue)
	if match == nil {
		return ""
	}
	return match[1]
}

// Authenticate checks the Authorization header against the token store
// before allowing request processing to continue. A missing or malformed
// header rejects immediately with no storage access.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), m.logger)

		apiKey := extractAPIKey(r.Header.Get("Authorization"))
		if apiKey == "" {
			log.Debug("request rejected: missing or malformed authorization header",
				slog.String("path", r.URL.Path))
			shared.RespondWithStatus(w, http.StatusUnauthorized)
			return
		}

		known, err := m.tokens.Exists(r.Context(), apiKey)
		if err != nil {
			shared.RespondWithErrorAndLog(
				w,
				r,
				http.StatusInternalServerError,
				"Authorization check failed",
				err,
			)
			return
		}
		if !known {
			log.Debug("request rejected: unknown API key",
				slog.String("path", r.URL.Path))
			shared.RespondWithStatus(w, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
