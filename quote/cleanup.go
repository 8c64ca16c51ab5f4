package quote

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Models wrap their answer in whatever quotation marks they feel like, often
// mismatched, so straight, curly and guillemet marks all count as delimiters,
// opening or closing alike.
var (
	singleSpanRegexp = regexp.MustCompile(`["“«”]([^"“«”]*)["“«”]`)
	fragmentRegexp   = regexp.MustCompile(`["“«”]*([^"“«”]+)["“«”]*`)
)

// Clean extracts the most plausible single-sentence quote from raw model
// output. When the text contains exactly one quoted span, that span is the
// answer. Otherwise the longest run of text between quotation marks is kept,
// under the heuristic that the real quote is the dominant stretch of prose.
// The result is cut at the first newline to drop trailing commentary. Clean
// never fails; it returns an empty string only for effectively empty input.
func Clean(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if spans := singleSpanRegexp.FindAllStringSubmatch(cleaned, -1); len(spans) == 1 {
		cleaned = spans[0][1]
	} else if fragments := fragmentRegexp.FindAllStringSubmatch(cleaned, -1); len(fragments) > 0 {
		longest := ""
		for _, fragment := range fragments {
			if utf8.RuneCountInString(fragment[1]) > utf8.RuneCountInString(longest) {
				longest = fragment[1]
			}
		}
		cleaned = longest
	}

	if i := strings.IndexByte(cleaned, '\n'); i >= 0 {
		cleaned = cleaned[:i]
	}

	return cleaned
}
