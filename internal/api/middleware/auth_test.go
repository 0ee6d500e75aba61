package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/post-api/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenStore is an in-memory implementation of store.TokenStore.
type fakeTokenStore struct {
	known   map[string]bool
	err     error
	lookups int
}

func (f *fakeTokenStore) Exists(ctx context.Context, value string) (bool, error) {
	f.lookups++
	if f.err != nil {
		return false, f.err
	}
	return f.known[value], nil
}

func TestAuthMiddlewareAuthenticate(t *testing.T) {
	apiKey := uuid.NewString()

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectLookup   bool
	}{
		{
			name:           "known token",
			authHeader:     "Api-Key " + apiKey,
			expectedStatus: http.StatusOK,
			expectLookup:   true,
		},
		{
			name:           "scheme match is case-insensitive",
			authHeader:     "api-key " + apiKey,
			expectedStatus: http.StatusOK,
			expectLookup:   true,
		},
		{
			name:           "extra whitespace between scheme and token",
			authHeader:     "Api-Key    " + apiKey,
			expectedStatus: http.StatusOK,
			expectLookup:   true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Bearer " + apiKey,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "scheme without credential",
			authHeader:     "Api-Key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "credential with trailing garbage",
			authHeader:     "Api-Key " + apiKey + " extra",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token",
			authHeader:     "Api-Key " + uuid.NewString(),
			expectedStatus: http.StatusUnauthorized,
			expectLookup:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &fakeTokenStore{known: map[string]bool{apiKey: true}}
			subject := middleware.NewAuthMiddleware(tokens, nil)

			handlerCalled := false
			handler := subject.Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					handlerCalled = true
					w.WriteHeader(http.StatusOK)
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/posts", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectLookup {
				assert.Equal(t, 1, tokens.lookups)
			} else {
				assert.Zero(t, tokens.lookups,
					"malformed headers must be rejected without storage access")
			}

			if tt.expectedStatus == http.StatusOK {
				assert.True(t, handlerCalled)
			} else {
				assert.False(t, handlerCalled, "rejection must short-circuit the pipeline")
				assert.Empty(t, rec.Body.String(), "401 responses carry no body")
			}
		})
	}
}

func TestAuthMiddlewareStorageFailure(t *testing.T) {
	tokens := &fakeTokenStore{err: assert.AnError}
	subject := middleware.NewAuthMiddleware(tokens, nil)

	handlerCalled := false
	handler := subject.Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Api-Key "+uuid.NewString())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, handlerCalled)
}
