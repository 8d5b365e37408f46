package router

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/site-pager/internal/apperr"
	"github.com/labstack/echo/v4"
)

// queryInt reads an integer query parameter, returning def when it is absent.
// Only non-numeric input is rejected; range checks belong to the pagination helpers.
func queryInt(c echo.Context, name string, def int) (int, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.NewFieldValidation(name, "must be an integer", err)
	}
	return n, nil
}

func requiredQueryInt(c echo.Context, name string) (int, error) {
	if strings.TrimSpace(c.QueryParam(name)) == "" {
		return 0, apperr.NewFieldValidation(name, "is required", nil)
	}
	return queryInt(c, name, 0)
}
