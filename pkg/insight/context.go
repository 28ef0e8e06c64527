package insight

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"echoparse-be/internal/entity"
)

// ContextLimit caps how many candidates are rendered into the evidence block.
const ContextLimit = 3

// ComposeContext renders a bounded evidence block, one line per candidate in
// input order. Missing dates are marked "unknown date" verbatim.
func ComposeContext(candidates []*entity.RetrievedReview, limit int) string {
	if limit <= 0 {
		limit = ContextLimit
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		platform := c.Platform
		if platform == "" {
			platform = "unknown"
		}

		rating := ""
		if c.Rating != nil {
			rating = strconv.Itoa(*c.Rating)
		}

		date := "unknown date"
		if c.ReviewDate != nil {
			date = c.ReviewDate.Format(time.RFC3339)
		}

		lines = append(lines, fmt.Sprintf("[%s] ⭐%s: %s (date: %s)", platform, rating, c.ReviewText, date))
	}

	return strings.Join(lines, "\n")
}
