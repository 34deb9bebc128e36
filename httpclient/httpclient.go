// Package httpclient is the blocking HTTP boundary the page package
// calls to fetch a document. It is a thin wrapper over net/http,
// grounded on the teacher's dom.ResourceLoader.loadFromURL, narrowed to
// the get(host, port, path) -> HttpResponse | NetworkError boundary
// shape and extended with a bounded redirect follower.
package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"tinybrowser/log"
	"tinybrowser/urlparse"
)

// maxRedirects bounds the number of Location-header hops Get will
// follow before giving up. Five is the number spec.md itself suggests
// as a reasonable cap for Open Question (a).
const maxRedirects = 5

// Response is the result of a successful fetch.
type Response struct {
	StatusCode int
	Body       string
}

// NetworkError wraps a transport-level failure (DNS, connection
// refused, timeout, too many redirects) — a boundary error, not a
// runtime.Fault, since it originates outside the program's own logic.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("httpclient: fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client issues blocking GET requests against a fixed timeout and
// follows redirects itself (rather than via http.Client's own
// CheckRedirect) so the hop cap is explicit and testable.
type Client struct {
	http *http.Client
}

// New creates a Client with a sane default timeout.
func New() *Client {
	return &Client{http: &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
}

// Get fetches u, following up to maxRedirects redirects.
func (c *Client) Get(u *urlparse.URL) (*Response, error) {
	current := u
	for hop := 0; ; hop++ {
		if hop > maxRedirects {
			return nil, &NetworkError{URL: current.String(), Err: fmt.Errorf("too many redirects (> %d)", maxRedirects)}
		}

		resp, err := c.http.Get(current.String())
		if err != nil {
			return nil, &NetworkError{URL: current.String(), Err: err}
		}

		if loc := resp.Header.Get("Location"); isRedirect(resp.StatusCode) && loc != "" {
			resp.Body.Close()
			next, err := urlparse.ResolveReference(current, loc)
			if err != nil {
				return nil, &NetworkError{URL: current.String(), Err: err}
			}
			log.Debugf("httpclient: following redirect %s -> %s", current.String(), next.String())
			current = next
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, &NetworkError{URL: current.String(), Err: err}
		}
		return &Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
	}
}

func isRedirect(status int) bool {
	return status == http.StatusMovedPermanently ||
		status == http.StatusFound ||
		status == http.StatusSeeOther ||
		status == http.StatusTemporaryRedirect ||
		status == http.StatusPermanentRedirect
}
