package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pawscare/vet-clinic-site/i18n"
)

const (
	// LanguageCookieName remembers the visitor's language toggle
	LanguageCookieName = "lang"

	languageKey       = "lang"
	languageCookieAge = 365 * 24 * 60 * 60
)

// Language resolves the active site language: ?lang= first, then the lang cookie,
// then Accept-Language. An explicit ?lang= is persisted into the cookie.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string
		if query := c.Query("lang"); i18n.IsSupported(query) {
			lang = query
			c.SetCookie(LanguageCookieName, lang, languageCookieAge, "/", "", false, false)
		} else if cookie, err := c.Cookie(LanguageCookieName); err == nil && i18n.IsSupported(cookie) {
			lang = cookie
		} else {
			lang = i18n.Match(c.GetHeader("Accept-Language"))
		}

		c.Set(languageKey, lang)
		c.Next()
	}
}

// GetLanguage returns the language resolved by Language, falling back to Accept-Language
func GetLanguage(c *gin.Context) string {
	if value, ok := c.Get(languageKey); ok {
		if lang, ok := value.(string); ok {
			return lang
		}
	}
	return i18n.Match(c.GetHeader("Accept-Language"))
}
