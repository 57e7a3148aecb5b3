// Package search provides helpers shared by the SQL search paths.
package search

import "strings"

// likeEscaper neutralizes LIKE/ILIKE metacharacters in user input.
// Queries using the returned pattern must declare ESCAPE '\'.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// LikePattern returns a substring-match pattern for the given term with
// LIKE metacharacters escaped, e.g. `50%` -> `%50\%%`.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
