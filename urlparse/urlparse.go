// Package urlparse resolves the small URL surface this browser core
// needs: "http://host[:port]/path[?query]". It deliberately rejects
// anything else — the teacher's dom package hands full URL resolution
// (and a "data:" scheme) to net/url and net/http; this package narrows
// that down to exactly the shape the blocking httpclient boundary can
// serve.
package urlparse

import (
	"fmt"
	"strconv"
	"strings"
)

// URL is a parsed "http://host[:port]/path[?query]" locator.
type URL struct {
	Host  string
	Port  int
	Path  string
	Query string
}

// Parse parses raw into a URL. Only the "http" scheme is supported;
// the default port is 80 when none is given.
func Parse(raw string) (*URL, error) {
	const scheme = "http://"
	if !strings.HasPrefix(raw, scheme) {
		return nil, fmt.Errorf("urlparse: unsupported scheme in %q, only %q is supported", raw, "http")
	}
	rest := raw[len(scheme):]
	if rest == "" {
		return nil, fmt.Errorf("urlparse: missing host in %q", raw)
	}

	hostPort := rest
	path := "/"
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		hostPort = rest[:i]
		path = rest[i:]
	}
	if hostPort == "" {
		return nil, fmt.Errorf("urlparse: missing host in %q", raw)
	}

	host := hostPort
	port := 80
	if i := strings.IndexByte(hostPort, ':'); i >= 0 {
		host = hostPort[:i]
		portStr := hostPort[i+1:]
		p, err := strconv.Atoi(portStr)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("urlparse: invalid port %q in %q", portStr, raw)
		}
		port = p
	}
	if host == "" {
		return nil, fmt.Errorf("urlparse: missing host in %q", raw)
	}

	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		query = path[i+1:]
		path = path[:i]
	}

	return &URL{Host: host, Port: port, Path: path, Query: query}, nil
}

// String renders u back into "http://host[:port]/path[?query]" form.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(u.Host)
	if u.Port != 80 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(u.Port))
	}
	b.WriteString(u.Path)
	if u.Query != "" {
		b.WriteString("?")
		b.WriteString(u.Query)
	}
	return b.String()
}

// ResolveReference resolves ref (an absolute "http://..." URL or a
// path rooted at '/') against base. Any other shape is rejected — the
// core only ever follows redirect Location headers and anchor hrefs
// of these two forms.
func ResolveReference(base *URL, ref string) (*URL, error) {
	if strings.HasPrefix(ref, "http://") {
		return Parse(ref)
	}
	if strings.HasPrefix(ref, "/") {
		path := ref
		query := ""
		if i := strings.IndexByte(path, '?'); i >= 0 {
			query = path[i+1:]
			path = path[:i]
		}
		return &URL{Host: base.Host, Port: base.Port, Path: path, Query: query}, nil
	}
	return nil, fmt.Errorf("urlparse: cannot resolve reference %q against %q", ref, base.String())
}
