package favorites

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pianosheets/internal/models"
)

// Serialize renders the full favorites mapping back into the module text
// format the store expects: a generated-file comment header stamped with
// the given time, then an exported `favorites` assignment. Users are
// emitted in sorted order so the output is deterministic.
func Serialize(favs models.Favorites, now time.Time) string {
	userIDs := favs.UserIDs()
	sort.Strings(userIDs)

	var b strings.Builder
	b.WriteString("// Auto-generated favorites list\n")
	b.WriteString("// Multi-user support - each user has their own favorites\n")
	fmt.Fprintf(&b, "// Updated: %s UTC\n", now.UTC().Format("2006-01-02 15:04:05"))
	b.WriteString("\nexport const favorites = {\n")

	for i, userID := range userIDs {
		quoted := make([]string, len(favs[userID]))
		for j, songID := range favs[userID] {
			quoted[j] = `"` + songID + `"`
		}
		fmt.Fprintf(&b, "  %q: [%s]", userID, strings.Join(quoted, ", "))
		if i < len(userIDs)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString("};\n")
	return b.String()
}
