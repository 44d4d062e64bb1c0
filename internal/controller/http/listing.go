package http

import (
	"net/http"
	"strconv"

	"edumart/internal/repo/persistent"
	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
)

// parseListingFilter reads the public listing query parameters shared
// by courses and products: category, minPrice, maxPrice, search, and
// (courses only) level.
func parseListingFilter(c *gin.Context) (persistent.ListingFilter, bool) {
	filter := persistent.ListingFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
	}

	for _, bound := range []struct {
		param string
		dst   **float64
	}{
		{"minPrice", &filter.MinPrice},
		{"maxPrice", &filter.MaxPrice},
	} {
		raw := c.Query(bound.param)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": bound.param + " must be a valid number"})
			return filter, false
		}
		*bound.dst = &value
	}

	return filter, true
}

func listingError(c *gin.Context, err error) {
	c.JSON(usecase.Status(err), gin.H{"success": false, "message": errMessage(err)})
}

func parsePageQuery(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

func pageCount(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
