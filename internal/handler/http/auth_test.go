package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
)

type fakeAuthService struct {
	resp auth.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if f.err != nil {
		return auth.LoginResponse{}, f.err
	}
	return f.resp, nil
}

func doLogin(t *testing.T, svc auth.AuthService, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	handler := NewAuthHandler(svc)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &fakeAuthService{resp: auth.LoginResponse{AccessToken: "token-123", ExpiresAt: 1750000000}}

	rec, envelope := doLogin(t, svc, auth.LoginRequest{Username: "admin", Password: "secret"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Login successful", envelope.Message)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "token-123", data["access_token"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &fakeAuthService{err: auth.ErrInvalidCredentials}

	rec, envelope := doLogin(t, svc, auth.LoginRequest{Username: "admin", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
