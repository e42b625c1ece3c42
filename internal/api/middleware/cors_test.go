package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func corsPreflight(allowed []string, origin string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(CORS(allowed))
	e.POST("/api/contact", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCORS_WildcardWhenUnconfigured(t *testing.T) {
	rec := corsPreflight(nil, "https://curafehealth.com")

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	rec := corsPreflight([]string{"https://curafehealth.com"}, "https://curafehealth.com")

	assert.Equal(t, "https://curafehealth.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_DisallowedOriginGetsNoHeader(t *testing.T) {
	rec := corsPreflight([]string{"https://curafehealth.com"}, "https://evil.example.com")

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_BlankEntriesIgnored(t *testing.T) {
	rec := corsPreflight([]string{" ", ""}, "https://curafehealth.com")

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
