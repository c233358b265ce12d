package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"

	"manualqa/internal/domain/docModel"
	"manualqa/pkg/logger_i"
)

const pageExtractionTimeout = 10 * time.Second

func extractPDF(filePath string, fileName string) (docModel.ExtractedDocument, error) {
	logger := logger_i.NewLogger("PDFExtract")

	reader, err := pdf.Open(filePath)
	if err != nil {
		return docModel.ExtractedDocument{}, fmt.Errorf("open pdf %s: %w", fileName, err)
	}

	totalPages := reader.NumPage()
	pages := make([]docModel.PageContent, 0, totalPages)

	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, docModel.TextPage(""))
			continue
		}

		text, err := protectExtract(page)
		if err != nil {
			//a bad page degrades to empty, the rest of the document survives
			logger.Warn("page extraction failed", "file", fileName, "page", i, "error", err)
			text = ""
		}
		pages = append(pages, docModel.TextPage(text))
	}

	metadata := readMetadata(reader, fileName)
	metadata.TotalPages = totalPages

	return docModel.ExtractedDocument{
		Pages:    pages,
		Metadata: metadata,
	}, nil
}

// protectExtract isolates GetPlainText, which can panic or stall on
// malformed content streams.
func protectExtract(page pdf.Page) (string, error) {
	return guardedExtract(pageExtractionTimeout, func() (string, error) {
		return page.GetPlainText(nil)
	})
}

type extractResult struct {
	text string
	err  error
}

// guardedExtract runs fn with a panic guard and a deadline. The result
// travels through a buffered channel so a late finisher never races the
// timeout return and never leaks blocked.
func guardedExtract(timeout time.Duration, fn func() (string, error)) (string, error) {
	results := make(chan extractResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- extractResult{err: fmt.Errorf("extractor panic: %v", r)}
			}
		}()
		text, err := fn()
		results <- extractResult{text: text, err: err}
	}()

	select {
	case result := <-results:
		return result.text, result.err
	case <-time.After(timeout):
		return "", errors.New("page extraction timed out")
	}
}

func readMetadata(reader *pdf.Reader, fileName string) docModel.DocumentMetadata {
	info := reader.Trailer().Key("Info")

	metadata := docModel.DocumentMetadata{
		Title:   info.Key("Title").Text(),
		Author:  info.Key("Author").Text(),
		Subject: info.Key("Subject").Text(),
	}
	if metadata.Title == "" {
		metadata.Title = fileName
	}
	return metadata
}
