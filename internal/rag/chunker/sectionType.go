package chunker

import (
	"strings"

	"manualqa/internal/domain/docModel"
)

// keyword groups checked in priority order - first match wins
var sectionKeywords = []struct {
	sectionType docModel.SectionType
	keywords    []string
}{
	{docModel.SectionWarning, []string{"주의", "경고", "위험", "조심"}},
	{docModel.SectionInstruction, []string{"사용법", "조작", "작동", "방법"}},
	{docModel.SectionSpecification, []string{"사양", "규격", "제원"}},
	{docModel.SectionTroubleshooting, []string{"문제해결", "고장", "점검", "진단"}},
}

// IdentifySectionType classifies chunk text into the closed section
// vocabulary. Total function - anything unmatched is general.
func IdentifySectionType(text string) docModel.SectionType {
	lower := strings.ToLower(text)

	for _, group := range sectionKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.sectionType
			}
		}
	}
	return docModel.SectionGeneral
}
