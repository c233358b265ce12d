package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lu4p/cat"

	"manualqa/internal/domain/docModel"
)

// extractDocument dispatches on the uploaded file's extension. PDFs go
// through the page-aware extractor, everything else cat can read becomes a
// single-page document.
func extractDocument(filePath string, fileName string) (docModel.ExtractedDocument, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extractPDF(filePath, fileName)
	case ".txt", ".md", ".docx", ".odt", ".rtf":
		return extractPlain(filePath, fileName)
	default:
		return docModel.ExtractedDocument{}, fmt.Errorf("unsupported file type: %s", fileName)
	}
}

func extractPlain(filePath string, fileName string) (docModel.ExtractedDocument, error) {
	text, err := cat.File(filePath)
	if err != nil {
		return docModel.ExtractedDocument{}, fmt.Errorf("read %s: %w", fileName, err)
	}

	return docModel.ExtractedDocument{
		Pages: []docModel.PageContent{docModel.TextPage(text)},
		Metadata: docModel.DocumentMetadata{
			Title:      fileName,
			TotalPages: 1,
		},
	}, nil
}
