package leetcode

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/limbo/leetmap/pkg/cleanup"
)

const (
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
	// the endpoint hands out csrftoken cookies with a long lifetime; refresh
	// well before that to survive server-side rotation
	tokenTTL = 30 * time.Minute
)

// Transport decorates outbound GraphQL requests with the headers the endpoint
// expects: a browser-ish User-Agent, the site Referer, and a CSRF token
// obtained via a preliminary unauthenticated GET to the same endpoint. The
// token is cached for tokenTTL. Token acquisition is best effort: when it
// fails, requests go out without one.
type Transport struct {
	base     http.RoundTripper
	client   *http.Client
	endpoint string
	siteURL  string

	mu        sync.Mutex
	token     string
	fetchedAt time.Time
}

func NewTransport(base http.RoundTripper, endpoint string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	t := &Transport{
		base:     base,
		client:   &http.Client{Transport: base, Timeout: 10 * time.Second},
		endpoint: endpoint,
		siteURL:  "https://leetcode.com",
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing idle leetcode connections",
		F: func() error {
			t.client.CloseIdleConnections()
			return nil
		},
	})
	return t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("User-Agent", userAgent)
	out.Header.Set("Referer", t.siteURL)
	if token := t.csrfToken(); token != "" {
		out.Header.Set("x-csrftoken", token)
		out.Header.Set("Cookie", "csrftoken="+token)
	}
	return t.base.RoundTrip(out)
}

// csrfToken returns the cached token, refreshing it when stale. An empty
// string means no token could be obtained.
func (t *Transport) csrfToken() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Since(t.fetchedAt) < tokenTTL {
		return t.token
	}

	req, err := http.NewRequest(http.MethodGet, t.endpoint, nil)
	if err != nil {
		return t.token
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		slog.Debug("csrf token fetch failed", slog.String("error", err.Error()))
		return t.token
	}
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == "csrftoken" && c.Value != "" {
			t.token = c.Value
			t.fetchedAt = time.Now()
			break
		}
	}
	return t.token
}
