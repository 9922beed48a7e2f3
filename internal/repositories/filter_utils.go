package repositories

import (
	"fmt"
	"strings"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 100
)

// Sort options accepted by the listing endpoints. Anything else falls back
// to newest-first. Identifier is always the tiebreak so pages are stable.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

func orderClause(sort string) string {
	switch sort {
	case SortOldest:
		return "ORDER BY created_at ASC, id ASC"
	case SortPriceAsc:
		return "ORDER BY price ASC, id ASC"
	case SortPriceDesc:
		return "ORDER BY price DESC, id ASC"
	default:
		return "ORDER BY created_at DESC, id ASC"
	}
}

// clampLimit bounds a requested page size so a single request can never pull
// the whole collection.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

// pageOffset converts a 1-based page number into a row offset.
func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// whereBuilder accumulates AND-joined conditions with positional Postgres
// placeholders.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add appends a condition. expr must contain a single %d verb for the
// placeholder index, e.g. "price >= $%d".
func (b *whereBuilder) add(expr string, arg interface{}) {
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)+1))
	b.args = append(b.args, arg)
}

// addRaw appends a condition with no bound argument.
func (b *whereBuilder) addRaw(expr string) {
	b.conds = append(b.conds, expr)
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// next returns the placeholder index for the next argument appended outside
// the builder (LIMIT/OFFSET).
func (b *whereBuilder) next() int {
	return len(b.args) + 1
}
