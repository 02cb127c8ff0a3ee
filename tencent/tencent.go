// Package tencent fetches real-time quote batches from the qt.gtimg.cn
// endpoint and decodes them into astock quotes.
package tencent

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zhenxuanshi/astock"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// DefaultBaseURL is the public batch quote endpoint.
const DefaultBaseURL = "https://qt.gtimg.cn"

// DefaultTimeout bounds one provider call. Exceeding it fails with
// astock.ErrTimeout rather than hanging.
const DefaultTimeout = 10 * time.Second

// Client queries the quote provider.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given endpoint. An empty baseURL selects the
// public endpoint; a zero timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves one quote batch for the given codes. Bare codes are
// normalized to their exchange-prefixed form before the call. The response
// body is GBK and is transcoded before decoding.
func (c *Client) Fetch(codes ...string) ([]astock.Quote, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("no code to query")
	}
	normalized := make([]string, len(codes))
	for i, code := range codes {
		normalized[i] = astock.NormalizeCode(code)
	}
	addr := c.baseURL + "/q=" + strings.Join(normalized, ",")

	resp, err := c.http.Get(addr)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("GET %s: %w", addr, astock.ErrTimeout)
		}
		return nil, fmt.Errorf("GET %s: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	body, err := io.ReadAll(transform.NewReader(resp.Body, simplifiedchinese.GBK.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", addr, err)
	}
	return astock.DecodeQuotes(string(body))
}

// isTimeout reports whether err is a client timeout of any flavor.
func isTimeout(err error) bool {
	if os.IsTimeout(err) {
		return true
	}
	var t interface{ Timeout() bool }
	if errors.As(err, &t) {
		return t.Timeout()
	}
	// the http client wraps its deadline error in a url.Error whose message
	// mentions the deadline
	return strings.Contains(err.Error(), "Client.Timeout")
}
