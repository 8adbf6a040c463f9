package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/uuid"
)

// URIID is the URI parameter that all single-resource endpoints share.
type URIID struct {
	ID uuid.UUID `uri:"id"`
}

// parseID parses the ID URI parameter and translates parse failures into a
// user-facing error.
func parseID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return uri.ID, nil
}

// Pagination is embedded in all list responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset int   `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

const defaultLimit = 50

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}

	return limit
}

// paginate cuts the offset/limit window out of a slice. Negative offsets
// behave like an offset of 0.
func paginate[T any](items []T, offset, limit int) []T {
	limit = limitOrDefault(limit)

	if offset < 0 {
		offset = 0
	}

	if offset >= len(items) {
		return nil
	}

	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}

	return items
}
