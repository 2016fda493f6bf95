package utils

import (
	"math"
	"net/http"
	"strconv"

	"github.com/jobify-dev/jobs-api/models"
)

// GetPaginationParams parses page and limit query parameters from a request.
// Returns page (default 1) and limit (default 30).
func GetPaginationParams(r *http.Request) (page, limit int) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = models.DefaultPage
	}

	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = models.DefaultLimit
	}
	return page, limit
}

// TotalPages returns how many pages of size limit are needed for total items.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
