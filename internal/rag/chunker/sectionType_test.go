package chunker

import (
	"testing"

	"manualqa/internal/domain/docModel"
)

func TestIdentifySectionType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want docModel.SectionType
	}{
		{"warning keyword", "주의: 엔진이 뜨거울 수 있습니다", docModel.SectionWarning},
		{"instruction keyword", "시동 거는 방법을 설명합니다", docModel.SectionInstruction},
		{"specification keyword", "엔진 제원 및 용량", docModel.SectionSpecification},
		{"troubleshooting keyword", "고장 시 점검 절차", docModel.SectionTroubleshooting},
		{"no keyword", "차량 소개", docModel.SectionGeneral},
		{"empty text", "", docModel.SectionGeneral},
		{"warning beats instruction", "사용법 안내 중 경고 사항", docModel.SectionWarning},
		{"instruction beats specification", "규격에 맞는 조작 순서", docModel.SectionInstruction},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IdentifySectionType(tc.text); got != tc.want {
				t.Errorf("IdentifySectionType(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
