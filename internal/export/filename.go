package export

import (
	"regexp"
	"strings"
)

const (
	// DefaultBaseName is used when no usable title can be derived.
	DefaultBaseName = "summary_output"

	maxTitleRunes    = 50
	maxFallbackRunes = 30
)

var (
	// titleLine matches the mandated first-line filename directive from
	// the generation prompt.
	titleLine = regexp.MustCompile(`^# 檔名：(.+)`)
	// titleDisallowed strips everything outside word characters, common
	// CJK, hyphens and spaces.
	titleDisallowed = regexp.MustCompile(`[^\w\x{4e00}-\x{9fa5}\-\s]+`)
	// fallbackDisallowed is stricter: the fallback name keeps no spaces.
	fallbackDisallowed = regexp.MustCompile(`[^\w\x{4e00}-\x{9fa5}]+`)
)

// BaseName derives the artifact base name from a summary. If the summary
// honors the `# 檔名：` first-line convention that name is sanitized and
// used; otherwise the first line serves as a fallback.
func BaseName(summary string) string {
	trimmed := strings.TrimSpace(summary)

	if m := titleLine.FindStringSubmatch(trimmed); m != nil {
		name := titleDisallowed.ReplaceAllString(strings.TrimSpace(m[1]), "_")
		name = truncateRunes(strings.TrimSpace(name), maxTitleRunes)
		if name != "" {
			return name
		}
		return DefaultBaseName
	}

	firstLine := trimmed
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		firstLine = trimmed[:i]
	}
	name := truncateRunes(fallbackDisallowed.ReplaceAllString(firstLine, "_"), maxFallbackRunes)
	if strings.Trim(name, "_") == "" {
		return DefaultBaseName
	}
	return name
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
