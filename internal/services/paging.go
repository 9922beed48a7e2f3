package services

// Paging defaults mirrored by the repositories; responses echo the values
// actually applied rather than whatever the client sent.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 12
	}
	if limit > 100 {
		return 100
	}
	return limit
}
