package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
)

// Query parameter parsing. Anything malformed is rejected as an invalid_filter
// error here, before any store query runs.

func pageParams(c *gin.Context) (page int, pageSize int, apiErr *apierr.Error) {
	page = 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, apierr.InvalidFilter("page must be a positive integer, got %q", raw)
		}
		page = n
	}

	// Zero means unset; the service substitutes the configured default.
	pageSize = 0
	if raw := strings.TrimSpace(c.Query("page_size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, apierr.InvalidFilter("page_size must be a positive integer, got %q", raw)
		}
		pageSize = n
	}
	return page, pageSize, nil
}

func stringQuery(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func boolQuery(c *gin.Context, name string) (*bool, *apierr.Error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return nil, apierr.InvalidFilter("%s must be true or false, got %q", name, raw)
	}
	return &v, nil
}

func int64Query(c *gin.Context, name string) (*int64, *apierr.Error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apierr.InvalidFilter("%s must be an integer, got %q", name, raw)
	}
	return &v, nil
}

func floatQuery(c *gin.Context, name string) (*float64, *apierr.Error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apierr.InvalidFilter("%s must be a number, got %q", name, raw)
	}
	return &v, nil
}

func idParam(c *gin.Context, name string) (int64, *apierr.Error) {
	raw := strings.TrimSpace(c.Param(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierr.InvalidFilter("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

// repeatedQuery returns every non-empty occurrence of a repeatable parameter.
func repeatedQuery(c *gin.Context, name string) []string {
	var out []string
	for _, v := range c.QueryArray(name) {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
