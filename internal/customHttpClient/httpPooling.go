package customHttpClient

import (
	"net"
	"net/http"
	"sync"

	"manualqa/internal/config"
)

var (
	once      sync.Once
	transport *http.Transport
)

// GetTransport returns the shared pooled transport. All outbound search
// traffic goes through one connection pool, with connection establishment
// bounded by the search engine's connect timeout.
func GetTransport() *http.Transport {
	once.Do(func() {
		dialer := &net.Dialer{Timeout: config.OpenSearchConnectTimeout}
		transport = &http.Transport{
			DialContext:         dialer.DialContext,
			MaxIdleConns:        config.MaxIdleConns,
			MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
			IdleConnTimeout:     config.IdleConnTimeout,
		}
	})
	return transport
}
