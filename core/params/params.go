package params

import (
	"strconv"
	"strings"

	"myevent-api/core/constants"

	"github.com/labstack/echo/v4"
)

type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

func NewQueryParams(c echo.Context) *QueryParams {
	return &QueryParams{
		PageNumber: positiveInt(c.QueryParam("page"), constants.DefaultPageNumber, 0),
		PageSize:   positiveInt(c.QueryParam("page_size"), constants.DefaultPageSize, constants.MaxPageSize),
		Search:     strings.TrimSpace(c.QueryParam("search")),
	}
}

func (p *QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// positiveInt parses raw, falling back to def for missing or non-positive
// values and clamping to limit when limit > 0.
func positiveInt(raw string, def, limit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
