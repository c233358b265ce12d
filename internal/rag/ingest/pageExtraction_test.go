package ingest

import (
	"strings"
	"testing"
	"time"
)

func TestGuardedExtractReturnsResult(t *testing.T) {
	text, err := guardedExtract(time.Second, func() (string, error) {
		return "페이지 본문", nil
	})
	if err != nil {
		t.Fatalf("guardedExtract: %v", err)
	}
	if text != "페이지 본문" {
		t.Errorf("text = %q", text)
	}
}

func TestGuardedExtractAbsorbsPanic(t *testing.T) {
	_, err := guardedExtract(time.Second, func() (string, error) {
		panic("malformed content stream")
	})
	if err == nil {
		t.Fatal("panicking extractor reported success")
	}
	if !strings.Contains(err.Error(), "malformed content stream") {
		t.Errorf("err = %v", err)
	}
}

func TestGuardedExtractTimesOut(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	text, err := guardedExtract(20*time.Millisecond, func() (string, error) {
		close(started)
		<-release
		return "너무 늦은 결과", nil
	})
	<-started

	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("err = %v", err)
	}
	if text != "" {
		t.Errorf("timed out call returned text %q", text)
	}
}

func TestGuardedExtractLateFinisherDoesNotBlock(t *testing.T) {
	release := make(chan struct{})

	if _, err := guardedExtract(10*time.Millisecond, func() (string, error) {
		<-release
		return "", nil
	}); err == nil {
		t.Fatal("expected timeout")
	}

	// the buffered channel must accept the late result so the goroutine exits
	close(release)
	time.Sleep(20 * time.Millisecond)
}
