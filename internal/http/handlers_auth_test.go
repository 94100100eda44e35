package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/campus-admin/internal/domain/auth"
	"github.com/campusware/campus-admin/internal/service"
)

func signIn(t *testing.T, handler http.Handler, username, password string) *http.Cookie {
	t.Helper()

	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == ClientIDCookie {
			return cookie
		}
	}
	t.Fatal("sign-in response did not set the client ID cookie")
	return nil
}

func TestSignIn_Success(t *testing.T) {
	handler := NewRouter(newTestRouterServices())

	body := bytes.NewReader([]byte(`{"username":"admin","password":"admin-pass"}`))
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var account service.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	assert.Equal(t, "admin", account.Identity.ID)
	assert.Equal(t, auth.RoleAdmin, account.Identity.Role)
	assert.NotEmpty(t, account.Session.Token)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, ClientIDCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSignIn_WrongPassword(t *testing.T) {
	handler := NewRouter(newTestRouterServices())

	body := bytes.NewReader([]byte(`{"username":"admin","password":"nope"}`))
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
	assert.Empty(t, rec.Result().Cookies(), "failed sign-in must not set a cookie")
}

func TestSignIn_MalformedBody(t *testing.T) {
	handler := NewRouter(newTestRouterServices())

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestStatus_RoundTrip(t *testing.T) {
	handler := NewRouter(newTestRouterServices())
	cookie := signIn(t, handler, "tutor", "tutor-pass")

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var account service.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	assert.Equal(t, "tutor", account.Identity.ID)
	assert.Equal(t, auth.RoleTeacher, account.Identity.Role)
}

func TestStatus_NoCookie(t *testing.T) {
	handler := NewRouter(newTestRouterServices())

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}

func TestSignOut_InvalidatesSession(t *testing.T) {
	handler := NewRouter(newTestRouterServices())
	cookie := signIn(t, handler, "admin", "admin-pass")

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, ClientIDCookie, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)

	// The old client ID no longer restores.
	req = httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignOut_WithoutSessionIsNoOp(t *testing.T) {
	handler := NewRouter(newTestRouterServices())

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthz(t *testing.T) {
	handler := NewRouter(newTestRouterServices())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
