package utils

import "strings"

const (
	SourceHH       = "hh"
	SourceSuperJob = "superjob"
)

var sourceAliases = map[string]string{
	"hh":       SourceHH,
	"hhru":     SourceHH,
	"hh.ru":    SourceHH,
	"superjob": SourceSuperJob,
	"sj":       SourceSuperJob,
}

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	_, ok := sourceAliases[strings.ToLower(strings.TrimSpace(source))]
	return ok
}

// CanonicalSource maps a source alias to its canonical id. Unknown names are
// returned lowercased.
func CanonicalSource(source string) string {
	s := strings.ToLower(strings.TrimSpace(source))
	if canonical, ok := sourceAliases[s]; ok {
		return canonical
	}
	return s
}

// AllSources returns the sources searched when none is selected, in report order
func AllSources() []string {
	return []string{SourceHH, SourceSuperJob}
}
