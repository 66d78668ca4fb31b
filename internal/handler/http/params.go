package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fundraiser/models"
)

// paginationFromQuery reads page and limit. Missing or malformed values are
// left as zero and replaced by defaults when the pagination is normalized.
func paginationFromQuery(r *http.Request) models.Pagination {
	q := r.URL.Query()
	return models.Pagination{
		Page:  queryInt(q.Get("page")),
		Limit: queryInt(q.Get("limit")),
	}
}

func campaignFilterFromQuery(r *http.Request) models.CampaignFilter {
	q := r.URL.Query()
	return models.CampaignFilter{
		Pagination: paginationFromQuery(r),
		Search:     strings.TrimSpace(q.Get("search")),
		CategoryID: strings.TrimSpace(q.Get("category")),
	}
}

func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
