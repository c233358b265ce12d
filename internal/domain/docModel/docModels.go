package docModel

import (
	"fmt"
	"strings"
	"time"
)

// SectionType is the closed vocabulary a chunk can be classified into.
type SectionType string

const (
	SectionWarning         SectionType = "warning"
	SectionInstruction     SectionType = "instruction"
	SectionSpecification   SectionType = "specification"
	SectionTroubleshooting SectionType = "troubleshooting"
	SectionGeneral         SectionType = "general"
)

type DocumentMetadata struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Subject    string `json:"subject"`
	TotalPages int    `json:"total_pages"`
}

// PageContent is what the extractor hands over per page - either plain text
// or a structured record carrying the text under a named field.
type PageContent struct {
	text         string
	structured   map[string]any
	isStructured bool
}

func TextPage(text string) PageContent {
	return PageContent{text: text}
}

func StructuredPage(fields map[string]any) PageContent {
	return PageContent{structured: fields, isStructured: true}
}

// Text coerces the page to a string. Structured pages prefer a "text" field,
// then a "content" field, then the whole record stringified. Never fails.
func (p PageContent) Text() string {
	if !p.isStructured {
		return p.text
	}
	if v, ok := p.structured["text"].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if v, ok := p.structured["content"].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fmt.Sprintf("%v", p.structured)
}

type ImageInfo struct {
	PageNumber int    `json:"page_number"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Data       []byte `json:"data,omitempty"`
}

// ExtractedDocument is the raw output of the extraction collaborator.
// Pages are in document order, page numbers are positional and 1-based.
type ExtractedDocument struct {
	Pages    []PageContent
	Metadata DocumentMetadata
	Images   []ImageInfo
}

// RunContext carries document-level provenance through one processing run,
// instead of ambient globals.
type RunContext struct {
	SourceFile string
	Timestamp  time.Time
	Metadata   DocumentMetadata
}

// ChunkMetadata is the denormalized provenance mapping stamped on every
// chunk of the run, for index-time filtering.
func (r RunContext) ChunkMetadata() map[string]any {
	return map[string]any{
		"title":                r.Metadata.Title,
		"author":               r.Metadata.Author,
		"subject":              r.Metadata.Subject,
		"total_pages":          r.Metadata.TotalPages,
		"source_file":          r.SourceFile,
		"processing_timestamp": r.Timestamp.Format(time.RFC3339),
	}
}

// Chunk is the atomic retrievable unit. Immutable once created; the ChunkID
// doubles as the external index document id so re-indexing the same run
// overwrites instead of duplicating.
type Chunk struct {
	Content           string         `json:"content"`
	Metadata          map[string]any `json:"metadata"`
	PageNumber        int            `json:"page_number"`
	ChunkID           string         `json:"chunk_id"`
	SectionType       SectionType    `json:"section_type"`
	HasImages         bool           `json:"has_images"`
	ImageDescriptions []string       `json:"image_descriptions"`
}
