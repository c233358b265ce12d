package rag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"manualqa/internal/config"
	"manualqa/internal/rag/search"
)

const NoResultsAnswer = "관련 정보를 찾을 수 없습니다."

// buildContext concatenates retrieved chunks into the prompt context in
// ranking order, each tagged with its page. The first result that would
// push the context past the cap stops the build; results are taken whole,
// never cut mid-chunk. The cap counts characters, not bytes, so korean
// content gets the full budget.
func buildContext(results []search.Result) string {
	var blocks []string
	total := 0

	for _, r := range results {
		block := fmt.Sprintf("[페이지 %d] %s", r.PageNumber, r.Content)
		if total+utf8.RuneCountInString(block) > config.MaxContextLength {
			break
		}
		blocks = append(blocks, block)
		total += utf8.RuneCountInString(block)
	}
	return strings.Join(blocks, "\n\n")
}

func buildPrompt(question string, context string) string {
	return fmt.Sprintf(`당신은 자동차 매뉴얼 전문 어시스턴트입니다. 아래 매뉴얼 내용을 바탕으로 질문에 답변해주세요.

매뉴얼 내용:
%s

질문: %s

답변 시 주의사항:
1. 매뉴얼 내용에 있는 정보만 사용하세요.
2. 매뉴얼에 없는 내용은 추측하지 말고 모른다고 답하세요.
3. 답변의 근거가 되는 페이지 번호를 함께 알려주세요. 예: (페이지 12)
4. 한국어로 답변하세요.

답변:`, context, question)
}
