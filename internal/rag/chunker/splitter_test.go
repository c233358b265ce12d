package chunker

import (
	"strings"
	"testing"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "no headings yields single section",
			content: "첫 번째 줄\n두 번째 줄",
			want:    []string{"첫 번째 줄\n두 번째 줄"},
		},
		{
			name:    "heading starts a new section",
			content: "서문입니다\n# 사용법\n버튼을 누르세요",
			want:    []string{"서문입니다", "# 사용법\n버튼을 누르세요"},
		},
		{
			name:    "heading with no body still forms a section",
			content: "# 제원\n## 주의",
			want:    []string{"# 제원", "## 주의"},
		},
		{
			name:    "whitespace only input yields nothing",
			content: "   \n\n\t",
			want:    nil,
		},
		{
			name:    "hash without space is not a heading",
			content: "#태그 같은 줄\n본문",
			want:    []string{"#태그 같은 줄\n본문"},
		},
		{
			name:    "deep heading levels recognized",
			content: "###### 소제목\n내용",
			want:    []string{"###### 소제목\n내용"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSections(tc.content)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d sections %q, want %d", len(got), got, len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("section %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSplitSectionsPreservesOrder(t *testing.T) {
	content := "# 하나\nA\n# 둘\nB\n# 셋\nC"
	got := SplitSections(content)
	if len(got) != 3 {
		t.Fatalf("got %d sections, want 3", len(got))
	}
	for i, prefix := range []string{"# 하나", "# 둘", "# 셋"} {
		if !strings.HasPrefix(got[i], prefix) {
			t.Errorf("section %d = %q, want prefix %q", i, got[i], prefix)
		}
	}
}
