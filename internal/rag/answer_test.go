package rag

import (
	"strings"
	"testing"
	"unicode/utf8"

	"manualqa/internal/rag/search"
)

func TestBuildContextCountsCharactersNotBytes(t *testing.T) {
	//two 1500-char korean results: ~9KB of utf-8 but well under the
	//4000-character cap combined, so both must be included
	results := []search.Result{
		{Content: strings.Repeat("가", 1500), PageNumber: 1},
		{Content: strings.Repeat("나", 1500), PageNumber: 2},
	}

	context := buildContext(results)
	if context == "" {
		t.Fatal("context empty for results that fit under the character cap")
	}
	if !strings.Contains(context, "[페이지 1]") || !strings.Contains(context, "[페이지 2]") {
		t.Errorf("context dropped a fitting result: %d chars", utf8.RuneCountInString(context))
	}
}

func TestBuildContextStopsAtFirstOverflow(t *testing.T) {
	//1200 chars each plus the page tag: three fit inside 4000, the
	//fourth crosses the cap and stops the build
	results := make([]search.Result, 5)
	for i := range results {
		results[i] = search.Result{Content: strings.Repeat("다", 1200), PageNumber: i + 1}
	}

	context := buildContext(results)
	for page, want := range map[string]bool{
		"[페이지 1]": true,
		"[페이지 2]": true,
		"[페이지 3]": true,
		"[페이지 4]": false,
		"[페이지 5]": false,
	} {
		if strings.Contains(context, page) != want {
			t.Errorf("context contains %s = %v, want %v", page, !want, want)
		}
	}
}
