package openSearchDB

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/opensearch-project/opensearch-go/v2"

	"manualqa/internal/domain/docModel"
	"manualqa/internal/rag/search"
)

// stubTransport routes requests to canned handlers by method and path
// prefix, recording every body it sees.
type stubTransport struct {
	handlers map[string]func(*http.Request) *http.Response
	bodies   []string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		s.bodies = append(s.bodies, string(raw))
	}
	for key, handler := range s.handlers {
		parts := strings.SplitN(key, " ", 2)
		if req.Method == parts[0] && strings.HasPrefix(req.URL.Path, parts[1]) {
			return handler(req), nil
		}
	}
	return jsonResponse(404, `{"error":"no stub"}`), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestStore(t *testing.T, transport *stubTransport) *Store {
	t.Helper()
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{"http://opensearch.test:9200"},
		Transport: transport,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewStoreWithClient(client, "manual-test")
}

func TestCreateIndexAlreadyExists(t *testing.T) {
	created := false
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"HEAD /manual-test": func(*http.Request) *http.Response {
			return jsonResponse(200, "")
		},
		"PUT /manual-test": func(*http.Request) *http.Response {
			created = true
			return jsonResponse(200, `{"acknowledged":true}`)
		},
	}}

	store := newTestStore(t, transport)
	if err := store.CreateIndex(context.Background()); err != nil {
		t.Fatalf("CreateIndex: %v", err)
	}
	if created {
		t.Error("CreateIndex issued a create for an existing index")
	}
}

func TestCreateIndexConcurrentCreatorWins(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"HEAD /manual-test": func(*http.Request) *http.Response {
			return jsonResponse(404, "")
		},
		"PUT /manual-test": func(*http.Request) *http.Response {
			return jsonResponse(400, `{"error":{"type":"resource_already_exists_exception"}}`)
		},
	}}

	store := newTestStore(t, transport)
	if err := store.CreateIndex(context.Background()); err != nil {
		t.Fatalf("CreateIndex: %v", err)
	}
}

func TestCreateIndexSendsKnnMapping(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"HEAD /manual-test": func(*http.Request) *http.Response {
			return jsonResponse(404, "")
		},
		"PUT /manual-test": func(*http.Request) *http.Response {
			return jsonResponse(200, `{"acknowledged":true}`)
		},
	}}

	store := newTestStore(t, transport)
	if err := store.CreateIndex(context.Background()); err != nil {
		t.Fatalf("CreateIndex: %v", err)
	}

	body := strings.Join(transport.bodies, "")
	for _, want := range []string{"knn_vector", "cosinesimil", "ef_construction"} {
		if !strings.Contains(body, want) {
			t.Errorf("create body missing %q", want)
		}
	}
}

func TestDeleteMissingIndexIsSuccess(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"DELETE /manual-test": func(*http.Request) *http.Response {
			return jsonResponse(404, `{"error":{"type":"index_not_found_exception"}}`)
		},
	}}

	store := newTestStore(t, transport)
	if err := store.DeleteIndex(context.Background()); err != nil {
		t.Fatalf("DeleteIndex: %v", err)
	}
}

func TestAddDocumentsCountMismatch(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{}}
	store := newTestStore(t, transport)

	chunks := []docModel.Chunk{{ChunkID: "chunk_0"}}
	err := store.AddDocuments(context.Background(), chunks, [][]float32{})
	if err == nil {
		t.Fatal("AddDocuments accepted mismatched inputs")
	}
	if len(transport.bodies) != 0 {
		t.Error("mismatched inputs reached the network")
	}
}

func TestAddDocumentsBulkAndRefresh(t *testing.T) {
	refreshed := false
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"POST /manual-test/_bulk": func(*http.Request) *http.Response {
			return jsonResponse(200, `{"errors":false,"items":[{"index":{"_id":"chunk_0","status":201}},{"index":{"_id":"chunk_1","status":201}}]}`)
		},
		"POST /manual-test/_refresh": func(*http.Request) *http.Response {
			refreshed = true
			return jsonResponse(200, `{}`)
		},
	}}

	store := newTestStore(t, transport)
	chunks := []docModel.Chunk{
		{ChunkID: "chunk_0", Content: "하나"},
		{ChunkID: "chunk_1", Content: "둘"},
	}
	embeddings := [][]float32{{0.1}, {0.2}}

	if err := store.AddDocuments(context.Background(), chunks, embeddings); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	if !refreshed {
		t.Error("AddDocuments did not refresh the index")
	}
	if !strings.Contains(transport.bodies[0], `"_id":"chunk_0"`) {
		t.Error("bulk body missing explicit document id")
	}
}

func TestAddDocumentsAllRejected(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"POST /manual-test/_bulk": func(*http.Request) *http.Response {
			return jsonResponse(200, `{"errors":true,"items":[{"index":{"_id":"chunk_0","status":400,"error":{"type":"mapper_parsing_exception"}}}]}`)
		},
		"POST /manual-test/_refresh": func(*http.Request) *http.Response {
			return jsonResponse(200, `{}`)
		},
	}}

	store := newTestStore(t, transport)
	err := store.AddDocuments(context.Background(),
		[]docModel.Chunk{{ChunkID: "chunk_0"}}, [][]float32{{0.1}})
	if err == nil {
		t.Fatal("AddDocuments reported success with zero documents indexed")
	}
}

const searchHits = `{"hits":{"hits":[
	{"_score":0.87,"_source":{"content":"브레이크 점검","page_number":3,"chunk_id":"chunk_7","section_type":"warning","has_images":false}}
]}}`

func TestSearchAppliesFilters(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"POST /manual-test/_search": func(*http.Request) *http.Response {
			return jsonResponse(200, searchHits)
		},
	}}

	store := newTestStore(t, transport)
	results, err := store.Search(context.Background(), []float32{0.1, 0.2}, 5,
		map[string]any{"section_type": "warning"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	body := transport.bodies[0]
	if !strings.Contains(body, `"term":{"section_type":"warning"}`) {
		t.Errorf("search body missing term filter: %s", body)
	}
	if len(results) != 1 || results[0].ScoreSpace != search.ScoreSpaceVector {
		t.Errorf("results = %+v", results)
	}
	if results[0].ChunkID != "chunk_7" || results[0].Score != 0.87 {
		t.Errorf("hit not mapped: %+v", results[0])
	}
}

func TestHybridSearchQueryShape(t *testing.T) {
	transport := &stubTransport{handlers: map[string]func(*http.Request) *http.Response{
		"POST /manual-test/_search": func(*http.Request) *http.Response {
			return jsonResponse(200, searchHits)
		},
	}}

	store := newTestStore(t, transport)
	results, err := store.HybridSearch(context.Background(), "브레이크", []float32{0.1}, 5)
	if err != nil {
		t.Fatalf("HybridSearch: %v", err)
	}

	body := transport.bodies[0]
	for _, want := range []string{`"knn"`, `"multi_match"`, `"content^2"`, `"should"`} {
		if !strings.Contains(body, want) {
			t.Errorf("hybrid body missing %s: %s", want, body)
		}
	}
	if !strings.Contains(body, `"excludes":["embedding"]`) {
		t.Error("hybrid body does not exclude stored vectors")
	}
	if len(results) != 1 || results[0].ScoreSpace != search.ScoreSpaceHybrid {
		t.Errorf("results = %+v", results)
	}
}
