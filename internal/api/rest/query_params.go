package rest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

const (
	// DEFAULT_CLAIMS_LIMIT is the page size when none is requested
	DEFAULT_CLAIMS_LIMIT = 50
	// MAX_CLAIMS_LIMIT caps the page size
	MAX_CLAIMS_LIMIT = 500
)

var knownClaimStatuses = map[schema.ClaimStatus]bool{
	schema.ClaimStatusPending:          true,
	schema.ClaimStatusCollected:        true,
	schema.ClaimStatusDuplicateBlocked: true,
	schema.ClaimStatusFailed:           true,
}

// ParseListClaimsQuery parses the query parameters for listing claims
// GET /api/v1/claims?event_id=<id>&subject_did=<did>&status=<s1>,<s2>&since=<rfc3339>&limit=<limit>
func ParseListClaimsQuery(c *gin.Context) (store.ClaimFilter, error) {
	filter := store.ClaimFilter{
		EventID:   c.Query("event_id"),
		SubjectID: c.Query("subject_did"),
		Limit:     DEFAULT_CLAIMS_LIMIT,
	}

	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := schema.ClaimStatus(strings.TrimSpace(s))
			if !knownClaimStatuses[status] {
				return filter, fmt.Errorf("invalid status: %s", s)
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid since timestamp: %s", raw)
		}
		filter.Since = &since
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, fmt.Errorf("invalid limit: %s", raw)
		}
		if limit > MAX_CLAIMS_LIMIT {
			limit = MAX_CLAIMS_LIMIT
		}
		filter.Limit = limit
	}

	return filter, nil
}

// ParseReconcileQuery parses the query parameters for audit reconciliation
// GET /api/v1/audit/reconcile?event_id=<id>&since=<rfc3339>
func ParseReconcileQuery(c *gin.Context) (eventID string, since *time.Time, err error) {
	eventID = c.Query("event_id")

	if raw := c.Query("since"); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return "", nil, fmt.Errorf("invalid since timestamp: %s", raw)
		}
		since = &parsed
	}

	return eventID, since, nil
}
