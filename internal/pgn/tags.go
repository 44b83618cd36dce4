package pgn

import (
	"regexp"

	"github.com/vytor/pgn2json/internal/optional"
)

// TagName names a PGN tag pair. Matching is case-insensitive.
type TagName string

const (
	TagEvent  TagName = "event"
	TagSite   TagName = "site"
	TagDate   TagName = "date"
	TagRound  TagName = "round"
	TagWhite  TagName = "white"
	TagBlack  TagName = "black"
	TagResult TagName = "result"
)

// knownTags is the Seven Tag Roster in PGN export order.
var knownTags = [...]TagName{
	TagEvent,
	TagSite,
	TagDate,
	TagRound,
	TagWhite,
	TagBlack,
	TagResult,
}

// KnownTagNames returns the seven tags every parsed record carries.
func KnownTagNames() []TagName {
	out := make([]TagName, len(knownTags))
	copy(out, knownTags[:])
	return out
}

var knownTagPatterns = func() map[TagName]*regexp.Regexp {
	out := make(map[TagName]*regexp.Regexp, len(knownTags))
	for _, name := range knownTags {
		out[name] = compileTagPattern(name)
	}
	return out
}()

func compileTagPattern(name TagName) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\[` + regexp.QuoteMeta(string(name)) + `\s"(.*?)"\]`)
}

// TagPattern returns a case-insensitive matcher for `[Name "value"]` that
// captures the value. The name is not checked against the known tags.
func TagPattern(name TagName) *regexp.Regexp {
	if re, ok := knownTagPatterns[name]; ok {
		return re
	}
	return compileTagPattern(name)
}

// ExtractTag returns {name: value} for the first `[Name "value"]` pair in line,
// or absent when the tag is not there.
func ExtractTag(name TagName, line string) optional.Value[map[TagName]string] {
	m := TagPattern(name).FindStringSubmatch(line)
	if len(m) < 2 {
		return optional.Absent[map[TagName]string]()
	}
	return optional.Present(map[TagName]string{name: m[1]})
}

// tagValue is ExtractTag without the single-entry map.
func tagValue(name TagName, line string) optional.Value[string] {
	return optional.Map(ExtractTag(name, line), func(pair map[TagName]string) string {
		return pair[name]
	})
}

var headerRe = regexp.MustCompile(`\[(\w+)\s+"([^"]*)"\]`)

// Headers extracts every tag pair in the text into a map keyed by the tag
// name as written. Later duplicates overwrite earlier ones.
func Headers(text string) map[string]string {
	out := map[string]string{}
	for _, m := range headerRe.FindAllStringSubmatch(Normalize(text), -1) {
		out[m[1]] = m[2]
	}
	return out
}
