// Package network provides the pre-configured HTTP transport capability injected into real IO contexts.
package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/ioctx-cli/ioctx/key"
	"github.com/spf13/viper"
)

var (
	once   sync.Once
	client *http.Client
)

// Client returns the shared HTTP client used as the default transport for real IO contexts.
// The request timeout is resolved from configuration on first use; the pooled transport is
// reused for the lifetime of the process.
func Client() *http.Client {
	once.Do(func() {
		timeout := viper.GetDuration(key.HTTPTimeout)
		if timeout <= 0 {
			timeout = time.Minute
		}
		client = &http.Client{
			Timeout:   timeout,
			Transport: newTransport(),
		}
	})
	return client
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
