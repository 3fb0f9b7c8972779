package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"premierlodge/services/apiclient"
	"premierlodge/services/pms"
	"premierlodge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthTestHandler(t *testing.T, upstream http.HandlerFunc) (*AuthHandler, *utils.MemoryTokenStore) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	tokens := utils.NewMemoryTokenStore()
	pmsClient := pms.NewClient(apiclient.New(srv.URL, tokens, zap.NewNop()))
	return NewAuthHandler(pmsClient, tokens), tokens
}

func loginRequest(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonUnmarshalBody(w *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}

func TestLoginIssuesStaffSession(t *testing.T) {
	h, tokens := newAuthTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"token":"upstream-tok","id":"staff-1","name":"Ada Okafor","email":"ada@example.com"}}`))
	})

	w := loginRequest(t, h, `{"email":"ada@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := tokens.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "upstream-tok", stored)

	var resp struct {
		Token string `json:"token"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, jsonUnmarshalBody(w, &resp))
	assert.Equal(t, "Ada Okafor", resp.Name)

	// The session subject is the upstream staff ID, not the email claim.
	token, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	subject, err := utils.TokenSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", subject)
}

func TestLoginSubjectFallsBackToEmail(t *testing.T) {
	h, _ := newAuthTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"token":"upstream-tok","email":"ada@example.com"}}`))
	})

	w := loginRequest(t, h, `{"email":"ada@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsonUnmarshalBody(w, &resp))

	token, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	subject, err := utils.TokenSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", subject)
}

func TestLoginUpstreamRejection(t *testing.T) {
	h, tokens := newAuthTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad credentials"}`))
	})

	w := loginRequest(t, h, `{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	stored, err := tokens.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "no credential is stored on a rejected sign-in")
}
