package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
)

// ContextKeyLang stores the resolved UI language for the request.
const ContextKeyLang ContextKey = "lang"

// LangCookieName persists an explicit language choice across visits.
const LangCookieName = "folio_lang"

// Language resolves the request language and stores it in the context.
// Priority: ?lang= query parameter (persisted to the cookie), then the
// cookie, then the Accept-Language header.
func Language(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""

			if q := r.URL.Query().Get("lang"); q != "" && i18n.IsSupported(q) {
				lang = q
				SetLanguageCookie(w, q)
			}

			if lang == "" {
				if cookie, err := r.Cookie(LangCookieName); err == nil && i18n.IsSupported(cookie.Value) {
					lang = cookie.Value
				}
			}

			if lang == "" {
				lang = catalog.MatchLanguage(r.Header.Get("Accept-Language"))
			}

			ctx := context.WithValue(r.Context(), ContextKeyLang, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLang retrieves the resolved language from the request context.
func GetLang(r *http.Request) string {
	if lang, ok := r.Context().Value(ContextKeyLang).(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}

// SetLanguageCookie persists the language preference for a year.
func SetLanguageCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: false, // the language switcher reads it client-side
		SameSite: http.SameSiteLaxMode,
	})
}
