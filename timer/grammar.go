package timer

import (
	"regexp"
	"strings"
)

var (
	// readyPattern accepts one to three non-empty digit groups.
	readyPattern = regexp.MustCompile(`^\d+(:\d+(:\d+)?)?$`)

	// constructionPattern accepts partial input such as "1:" or ":30".
	constructionPattern = regexp.MustCompile(`^\d*:?\d*:?\d*$`)
)

// IsConstructionValid reports whether text is plausible mid-edit input.
func IsConstructionValid(text string) bool {
	return constructionPattern.MatchString(strings.TrimSpace(text))
}

// IsReady reports whether text is complete enough to start a countdown.
func IsReady(text string) bool {
	return readyPattern.MatchString(strings.TrimSpace(text))
}
