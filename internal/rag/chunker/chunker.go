package chunker

import (
	"fmt"
	"regexp"
	"strings"

	"manualqa/internal/domain/docModel"
	"manualqa/internal/metrics"
	"manualqa/pkg/logger_i"
)

// TokenCounter bounds chunk size. Production plugs in the tiktoken wrapper,
// tests plug in whatever is deterministic.
type TokenCounter interface {
	Count(text string) int
}

var sentencePattern = regexp.MustCompile(`[.!?]\s+`)

type Chunker struct {
	counter   TokenCounter
	maxTokens int
	logger    *logger_i.Logger
}

func New(counter TokenCounter, maxTokens int) *Chunker {
	return &Chunker{
		counter:   counter,
		maxTokens: maxTokens,
		logger:    logger_i.NewLogger("Chunker"),
	}
}

// BuildChunks turns one extracted document into the final chunk sequence.
// Chunk ids are assigned sequentially across the whole document in emission
// order, so re-processing identical content reproduces identical ids.
func (c *Chunker) BuildChunks(doc docModel.ExtractedDocument, run docModel.RunContext) []docModel.Chunk {
	c.logger.Debug("chunking document", "pages", len(doc.Pages), "source", run.SourceFile)

	var chunks []docModel.Chunk
	chunkId := 0

	for pageIdx, page := range doc.Pages {
		pageNumber := pageIdx + 1

		text := page.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		pageImages := imagesOnPage(doc.Images, pageNumber)

		for _, section := range SplitSections(text) {
			if c.counter.Count(section) <= c.maxTokens {
				chunks = append(chunks, c.newChunk(section, pageNumber, chunkId, pageImages, run))
				chunkId++
				continue
			}

			//section over budget - subdivide, never drop
			for _, sub := range c.splitLongSection(section) {
				chunks = append(chunks, c.newChunk(sub, pageNumber, chunkId, pageImages, run))
				chunkId++
			}
		}
	}

	metrics.AddChunksProduced(len(chunks))
	c.logger.Info("chunking complete", "chunks", len(chunks), "source", run.SourceFile)
	return chunks
}

func (c *Chunker) newChunk(content string, pageNumber int, chunkId int, pageImages int, run docModel.RunContext) docModel.Chunk {
	return docModel.Chunk{
		Content:           strings.TrimSpace(content),
		Metadata:          run.ChunkMetadata(),
		PageNumber:        pageNumber,
		ChunkID:           fmt.Sprintf("chunk_%d", chunkId),
		SectionType:       IdentifySectionType(content),
		HasImages:         pageImages > 0,
		ImageDescriptions: describeImages(pageNumber, pageImages),
	}
}

// splitLongSection greedily packs sentence-like units into sub-chunks that
// stay within the token budget. A single sentence that alone exceeds the
// budget is emitted as-is - accepted overflow, not split further.
func (c *Chunker) splitLongSection(section string) []string {
	sentences := sentencePattern.Split(section, -1)

	var subChunks []string
	current := ""

	for _, sentence := range sentences {
		candidate := current + sentence + ". "

		if c.counter.Count(candidate) <= c.maxTokens {
			current = candidate
			continue
		}
		if current != "" {
			subChunks = append(subChunks, current)
		}
		current = sentence + ". "
	}

	if strings.TrimSpace(current) != "" {
		subChunks = append(subChunks, current)
	}
	return subChunks
}

func imagesOnPage(images []docModel.ImageInfo, pageNumber int) int {
	count := 0
	for _, img := range images {
		if img.PageNumber == pageNumber {
			count++
		}
	}
	return count
}

func describeImages(pageNumber int, count int) []string {
	if count == 0 {
		return []string{}
	}
	return []string{fmt.Sprintf("페이지 %d에 %d개의 이미지 포함", pageNumber, count)}
}
