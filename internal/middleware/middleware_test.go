package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

func TestAuthRedirectsToLogin(t *testing.T) {
	sm := scs.New()
	h := sm.LoadAndSave(Auth(sm)(okHandler()))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestAPIAuthReturnsJSONUnauthorized(t *testing.T) {
	sm := scs.New()
	h := sm.LoadAndSave(APIAuth(sm)(okHandler()))

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected non-empty error field")
	}
}

func TestAPIAuthAllowsAuthenticatedSession(t *testing.T) {
	sm := scs.New()

	// First request establishes the session.
	login := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sm.Put(r.Context(), SessionKeyUserID, int64(1))
	}))
	loginReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	loginRec := httptest.NewRecorder()
	login.ServeHTTP(loginRec, loginReq)

	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie after login")
	}

	h := sm.LoadAndSave(APIAuth(sm)(okHandler()))
	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGlobalRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 2)
	h := rl.Middleware()(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", last.Code, http.StatusTooManyRequests)
	}

	var body map[string]string
	if err := json.NewDecoder(last.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected non-empty error field")
	}
}

func TestGlobalRateLimiterIsPerIP(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)
	h := rl.Middleware()(okHandler())

	for i, addr := range []string{"10.0.0.1:1", "10.0.0.2:2", "10.0.0.3:3"} {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("request %d from %s: status = %d, want 200", i, addr, rec.Code)
		}
	}
}

func TestLoginProtectionLockout(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "admin@example.com"

	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Fatal("account locked before any attempts")
	}

	for i := 0; i < 2; i++ {
		if locked, _ := lp.RecordFailedAttempt(email); locked {
			t.Fatalf("locked after %d attempts, want lock at 3", i+1)
		}
	}
	locked, dur := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("expected lock after 3rd failed attempt")
	}
	if dur != time.Minute {
		t.Errorf("lock duration = %v, want 1m", dur)
	}

	if locked, _ := lp.IsAccountLocked(email); !locked {
		t.Error("IsAccountLocked = false for a locked account")
	}
}

func TestLoginProtectionClearedOnSuccess(t *testing.T) {
	lp := NewLoginProtection(DefaultLoginProtectionConfig())

	email := "admin@example.com"
	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	lp.RecordSuccessfulLogin(email)

	lp.attemptsMu.RLock()
	_, exists := lp.failedAttempts[email]
	lp.attemptsMu.RUnlock()
	if exists {
		t.Error("failed attempts not cleared after successful login")
	}
}

func TestLanguageResolution(t *testing.T) {
	catalog, err := i18n.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	var gotLang string
	h := Language(catalog)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = GetLang(r)
	}))

	tests := []struct {
		name   string
		url    string
		cookie string
		accept string
		want   string
	}{
		{"query param wins", "/?lang=ru", "en", "en", "ru"},
		{"unsupported query ignored", "/?lang=de", "ru", "", "ru"},
		{"cookie", "/", "ru", "en-US", "ru"},
		{"accept-language", "/", "", "ru-RU,ru;q=0.9", "ru"},
		{"default", "/", "", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if gotLang != tt.want {
				t.Errorf("lang = %q, want %q", gotLang, tt.want)
			}
		})
	}
}

func TestLanguageQueryParamSetsCookie(t *testing.T) {
	catalog, err := i18n.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	h := Language(catalog)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/?lang=ru", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == LangCookieName && c.Value == "ru" {
			found = true
		}
	}
	if !found {
		t.Error("expected language cookie to be set from query param")
	}
}

func TestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.Write([]byte("too late"))
		}
	})

	h := Timeout(20 * time.Millisecond)(slow)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), "timeout") {
		t.Errorf("body = %q, want timeout message", rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(DefaultSecurityHeadersConfig(false))(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("expected Content-Security-Policy header")
	}
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("expected HSTS header in production config")
	}

	devRec := httptest.NewRecorder()
	SecurityHeaders(DefaultSecurityHeadersConfig(true))(okHandler()).ServeHTTP(devRec, req)
	if devRec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must be disabled in development")
	}
}
