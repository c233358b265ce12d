package openSearchDB

import (
	"sync"

	"github.com/opensearch-project/opensearch-go/v2"

	"manualqa/internal/config"
	"manualqa/internal/customHttpClient"
	"manualqa/pkg/logger_i"
)

var (
	once     sync.Once
	instance *Store
)

// Store talks to one OpenSearch index over the shared pooled transport.
type Store struct {
	client *opensearch.Client
	index  string
	logger *logger_i.Logger
}

// GetStore returns the shared OpenSearch store, nil if the endpoint is not
// configured or the client could not be constructed. Callers must check.
func GetStore() *Store {
	once.Do(func() {
		logger := logger_i.NewLogger("OpenSearch")

		if config.OpenSearchEndpoint == "" {
			logger.Error("OPENSEARCH_ENDPOINT not set")
			return
		}

		client, err := opensearch.NewClient(opensearch.Config{
			Addresses: []string{config.OpenSearchEndpoint},
			Username:  config.OpenSearchUsername,
			Password:  config.OpenSearchPassword,
			Transport: customHttpClient.GetTransport(),
		})
		if err != nil {
			logger.Error("could not create opensearch client", "error", err)
			return
		}

		instance = &Store{
			client: client,
			index:  config.OpenSearchIndexName,
			logger: logger,
		}
		logger.Info("opensearch client ready", "endpoint", config.OpenSearchEndpoint, "index", config.OpenSearchIndexName)
	})
	return instance
}

// NewStoreWithClient wires an explicit client, used by tests with a stub
// transport.
func NewStoreWithClient(client *opensearch.Client, index string) *Store {
	return &Store{
		client: client,
		index:  index,
		logger: logger_i.NewLogger("OpenSearch"),
	}
}
