package sqlite

import "strings"

// LikeEscape is the ESCAPE clause matching LikePattern.
const LikeEscape = `ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns free text into a lower-cased substring pattern. Columns
// compared against it must be lower-cased on write.
func LikePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}
