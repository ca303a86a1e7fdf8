// Package favorites loads and saves the per-user favorites mapping, which
// lives in the content store as a hand-edited JavaScript module rather than
// strict JSON.
package favorites

import (
	"encoding/json"
	"log/slog"
	"regexp"

	"pianosheets/internal/models"
)

var (
	// The mapping is the first `favorites = { ... };` assignment in the file,
	// matched non-greedily so trailing code is ignored.
	assignmentPattern = regexp.MustCompile(`(?s)favorites\s*=\s*(\{.*?\});`)

	lineCommentPattern   = regexp.MustCompile(`//[^\n]*`)
	blockCommentPattern  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
)

// Parse recovers the favorites mapping from module-format source text. It is
// a best-effort pipeline of text normalizations followed by a strict JSON
// decode, not a general tokenizer: the object body is assumed to hold only
// string keys and arrays of strings. A missing assignment or an undecodable
// body both yield an empty mapping; favorites are treated as absent rather
// than failing the request.
//
// Known limitation: quote normalization rewrites every single quote, so a
// literal apostrophe inside a user ID or song ID corrupts the body and the
// decode falls back to empty.
func Parse(source string) models.Favorites {
	match := assignmentPattern.FindStringSubmatch(source)
	if match == nil {
		return models.Favorites{}
	}

	body := stripComments(match[1])
	body = normalizeQuotes(body)
	body = stripTrailingCommas(body)

	var favs models.Favorites
	if err := json.Unmarshal([]byte(body), &favs); err != nil {
		slog.Error("favorites text did not decode after normalization",
			"error", err, "text", truncate(body, 200))
		return models.Favorites{}
	}
	return favs
}

// stripComments removes line and block comments from the object body.
func stripComments(body string) string {
	body = lineCommentPattern.ReplaceAllString(body, "")
	return blockCommentPattern.ReplaceAllString(body, "")
}

// normalizeQuotes rewrites single-quoted string delimiters as double quotes.
func normalizeQuotes(body string) string {
	out := []byte(body)
	for i, b := range out {
		if b == '\'' {
			out[i] = '"'
		}
	}
	return string(out)
}

// stripTrailingCommas drops commas that immediately precede a closing
// brace or bracket.
func stripTrailingCommas(body string) string {
	return trailingCommaPattern.ReplaceAllString(body, "$1")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
