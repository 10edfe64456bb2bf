package middleware

import "github.com/gin-gonic/gin"

const langContextKey = "lang"

// Language resolves the request language (en|kn) from the lang query
// parameter or the language cookie and stores it on the request context,
// so handlers never consult ambient state.
func Language(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang, _ = c.Cookie("language")
	}
	if lang != "en" && lang != "kn" {
		lang = "en"
	}
	c.Set(langContextKey, lang)
	c.Next()
}

// Lang returns the language resolved by the Language middleware
func Lang(c *gin.Context) string {
	return c.GetString(langContextKey)
}
