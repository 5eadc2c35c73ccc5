package http

import (
	"net/http"
	"strconv"
)

// pageParams reads 1-based page and limit query values with the given
// defaults; limit is capped at 100.
func pageParams(r *http.Request, pageKey, limitKey string, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get(pageKey))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get(limitKey))
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}
