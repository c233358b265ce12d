package customHttpClient

import "testing"

func TestGetTransportSingleton(t *testing.T) {
	first := GetTransport()
	second := GetTransport()
	if first != second {
		t.Error("GetTransport returned distinct transports")
	}
}

func TestGetTransportBoundsConnectionSetup(t *testing.T) {
	transport := GetTransport()
	if transport.DialContext == nil {
		t.Error("transport has no bounded dialer")
	}
	if transport.MaxIdleConnsPerHost == 0 {
		t.Error("transport has no connection pooling configured")
	}
}
