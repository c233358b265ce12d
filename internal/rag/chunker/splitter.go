package chunker

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// SplitSections splits raw page text into heading-delimited sections.
// Lines before the first heading form an implicit leading section, a heading
// with no body still opens a section of its own, and whitespace-only
// sections are dropped. Pure function, order preserved.
func SplitSections(content string) []string {
	lines := strings.Split(content, "\n")

	var sections []string
	var current []string

	for _, line := range lines {
		if headingPattern.MatchString(line) {
			if len(current) > 0 {
				sections = append(sections, strings.Join(current, "\n"))
			}
			current = []string{line}
		} else {
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		sections = append(sections, strings.Join(current, "\n"))
	}

	result := make([]string, 0, len(sections))
	for _, section := range sections {
		if strings.TrimSpace(section) != "" {
			result = append(result, section)
		}
	}
	return result
}
