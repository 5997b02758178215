package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lensboard/config"
	"lensboard/internal/core"
	"lensboard/internal/middleware"
	"lensboard/internal/service"
	"lensboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const testSecret = "handler-test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.Auth.SecretKey = testSecret
	conf.Auth.Algorithm = "HS256"
	conf.Auth.CookieName = "access_token"
	conf.Auth.CookieSameSite = "lax"

	trace, err := telemetry.NewTrace(nil)
	if err != nil {
		t.Fatalf("NewTrace: %v", err)
	}
	logger := zap.NewNop()
	authService := service.NewAuthService(conf, logger, trace)
	recovery := middleware.NewRecovery(logger, conf)
	h := NewAuthHandler(conf, logger, trace, authService)

	r := gin.New()
	r.Use(recovery.ErrorHandler())
	r.POST("/auth", h.Login)
	return r
}

func mintToken(t *testing.T, userID int64, email string) string {
	t.Helper()
	claims := core.Claims{
		UserID:           userID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/auth", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	t.Parallel()
	r := newAuthRouter(t)

	token := mintToken(t, 42, "user@example.com")
	w := postForm(r, url.Values{"token": {token}, "user_id": {"42"}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	cookies := w.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "access_token" {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatalf("access_token cookie not set, cookies: %v", cookies)
	}
	if sessionCookie.Value != token {
		t.Error("cookie value is not the handed-off token")
	}
	if !sessionCookie.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}
	if sessionCookie.Path != "/" {
		t.Errorf("cookie path = %q, want /", sessionCookie.Path)
	}
	if sessionCookie.MaxAge != 0 {
		t.Errorf("cookie MaxAge = %d, want session cookie", sessionCookie.MaxAge)
	}
}

func TestLoginUserIDMismatch(t *testing.T) {
	t.Parallel()
	r := newAuthRouter(t)

	token := mintToken(t, 42, "user@example.com")
	w := postForm(r, url.Values{"token": {token}, "user_id": {"43"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "User ID mismatch") {
		t.Errorf("body = %s, want User ID mismatch", w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("cookie must not be set on mismatch")
	}
}

func TestLoginInvalidToken(t *testing.T) {
	t.Parallel()
	r := newAuthRouter(t)

	w := postForm(r, url.Values{"token": {"garbage"}, "user_id": {"42"}})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body: %s", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("cookie must not be set for invalid token")
	}
}

func TestLoginMissingForm(t *testing.T) {
	t.Parallel()
	r := newAuthRouter(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"no token", url.Values{"user_id": {"42"}}},
		{"no user_id", url.Values{"token": {"x"}}},
		{"empty", url.Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := postForm(r, tt.form)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body: %s", w.Code, w.Body.String())
			}
		})
	}
}
