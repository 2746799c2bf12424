package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, path, auth string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestBearerToken_Disabled(t *testing.T) {
	h := BearerToken("")(okHandler())
	assert.Equal(t, http.StatusOK, serve(h, "/events", ""))
}

func TestBearerToken_Enforced(t *testing.T) {
	h := BearerToken("s3cret", "/health", "/swagger/*")(okHandler())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "/events", ""))
	assert.Equal(t, http.StatusUnauthorized, serve(h, "/events", "Bearer nope"))
	assert.Equal(t, http.StatusUnauthorized, serve(h, "/events", "Basic s3cret"))
	assert.Equal(t, http.StatusOK, serve(h, "/events", "Bearer s3cret"))
	assert.Equal(t, http.StatusOK, serve(h, "/events", "bearer  s3cret "))

	assert.Equal(t, http.StatusOK, serve(h, "/health", ""))
	assert.Equal(t, http.StatusOK, serve(h, "/swagger/index.html", ""))
}

func TestBearerTokenParse(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}
