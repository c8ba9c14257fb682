package repositories

import "strings"

// orderClause translates a "field:direction" sort parameter into an ORDER BY
// clause, restricted to the given column whitelist. Anything it does not
// recognize falls back to newest-first.
func orderClause(sort string, columns map[string]string) string {
	const fallback = "created_at DESC"
	if sort == "" {
		return fallback
	}

	field, direction, _ := strings.Cut(sort, ":")
	column, ok := columns[strings.TrimSpace(field)]
	if !ok {
		return fallback
	}

	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(direction), "desc") {
		dir = "DESC"
	}
	return column + " " + dir
}

// likePattern builds a case-insensitive LIKE pattern for a search term.
func likePattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}
