package utils

import "strings"

// NormalizeEmail trims and lower-cases an address for storage and comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// LikeEscape is the escape character paired with EscapeLike in `LIKE ? ESCAPE '!'`.
// It is the same on mysql, postgres and sqlite, unlike a backslash.
const LikeEscape = "!"

var likeReplacer = strings.NewReplacer(
	LikeEscape, LikeEscape+LikeEscape,
	"%", LikeEscape+"%",
	"_", LikeEscape+"_",
)

// EscapeLike makes s match literally inside a LIKE pattern
func EscapeLike(s string) string {
	return likeReplacer.Replace(s)
}

// ContainsPattern builds a lower-cased `%s%` pattern for a case-insensitive substring LIKE
func ContainsPattern(s string) string {
	return "%" + EscapeLike(strings.ToLower(strings.TrimSpace(s))) + "%"
}
