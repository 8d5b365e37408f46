package middleware

import (
	"github.com/DjordjeVuckovic/site-pager/internal/locale"
	"github.com/labstack/echo/v4"
)

// Locale resolves the request language and stores it on the request context.
// An explicit "lang" query parameter wins over the Accept-Language header.
func Locale() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.QueryParam("lang")
			if header == "" {
				header = c.Request().Header.Get("Accept-Language")
			}

			lang := locale.Parse(header)
			c.Response().Header().Set("Content-Language", lang)

			req := c.Request()
			c.SetRequest(req.WithContext(locale.WithLang(req.Context(), lang)))
			return next(c)
		}
	}
}
