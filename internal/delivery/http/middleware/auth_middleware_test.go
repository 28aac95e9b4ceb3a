package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-portal/config"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenStore struct {
	active map[string]bool
	err    error
}

func (s *stubTokenStore) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.active[tokenID] = true
	return nil
}

func (s *stubTokenStore) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.active[tokenID], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAuthFixture(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *stubTokenStore) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	tokens := &stubTokenStore{active: make(map[string]bool)}
	return NewAuthMiddleware(jwtService, tokens, quietLogger()), jwtService, tokens
}

func echoCaller(t *testing.T, wantUser uuid.UUID, wantRole int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantUser, userID)
		roleID, ok := GetRoleIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantRole, roleID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	auth, jwtService, tokens := newAuthFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateAccessToken(userID, "doc@clinic.test", entity.RoleIDDoctor)
	require.NoError(t, err)
	require.NoError(t, tokens.Register(context.Background(), userID, tokenID, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/doctor/schedule", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Authenticate(echoCaller(t, userID, entity.RoleIDDoctor)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticate_Rejections(t *testing.T) {
	auth, jwtService, tokens := newAuthFixture(t)
	userID := uuid.New()
	unregistered, _, err := jwtService.GenerateAccessToken(userID, "doc@clinic.test", entity.RoleIDDoctor)
	require.NoError(t, err)
	foreign, _, err := jwt.NewJWTService(config.JWTConfig{Secret: "other", AccessExpiry: time.Minute}).
		GenerateAccessToken(userID, "doc@clinic.test", entity.RoleIDDoctor)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "missing header", header: "", want: "Authorization header is required"},
		{name: "wrong scheme", header: "Basic abc", want: "Invalid authorization header format"},
		{name: "empty token", header: "Bearer ", want: "Invalid authorization header format"},
		{name: "garbage", header: "Bearer not.a.jwt", want: "Invalid or expired token"},
		{name: "foreign signature", header: "Bearer " + foreign, want: "Invalid or expired token"},
		{name: "revoked", header: "Bearer " + unregistered, want: "Token has been revoked"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/doctor/schedule", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			auth.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
	assert.Empty(t, tokens.active)
}

func TestAuthenticate_TokenStoreDown(t *testing.T) {
	auth, jwtService, tokens := newAuthFixture(t)
	tokens.err = errors.New("redis: connection refused")
	token, _, err := jwtService.GenerateAccessToken(uuid.New(), "doc@clinic.test", entity.RoleIDDoctor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/doctor/schedule", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRequireDoctor(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name string
		ctx  context.Context
		want int
	}{
		{name: "doctor", ctx: WithCaller(context.Background(), uuid.New(), entity.RoleIDDoctor), want: http.StatusOK},
		{name: "patient", ctx: WithCaller(context.Background(), uuid.New(), entity.RoleIDPatient), want: http.StatusForbidden},
		{name: "anonymous", ctx: context.Background(), want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			RequireDoctor(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
