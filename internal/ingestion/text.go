package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe  = regexp.MustCompile(`[ \t]+`)
	multiBlanksRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, runs of spaces collapse, and blank-line runs are
// capped at one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = multiSpaceRe.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlanksRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
