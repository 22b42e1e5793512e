// Package search finds official sites through DuckDuckGo's HTML endpoint.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"policyguard/internal/alternatives"
	"policyguard/pkg/platform/sentinel"
)

const (
	defaultBaseURL   = "https://html.duckduckgo.com/html/"
	defaultUserAgent = "Mozilla/5.0 (compatible; policyguard/1.0)"
	maxPageBytes     = 2 << 20
)

type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// DuckDuckGo implements alternatives.Searcher.
type DuckDuckGo struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func New(cfg Config) *DuckDuckGo {
	d := &DuckDuckGo{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    cfg.HTTPClient,
	}
	if d.baseURL == "" {
		d.baseURL = defaultBaseURL
	}
	if d.userAgent == "" {
		d.userAgent = defaultUserAgent
	}
	if d.client == nil {
		d.client = &http.Client{Timeout: 10 * time.Second}
	}
	return d
}

// Search returns at most maxResults organic results for query.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]alternatives.SearchResult, error) {
	endpoint, err := url.Parse(d.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search base URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("q", query)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("search request failed: %s: %w", resp.Status, sentinel.ErrUnavailable)
	}

	return ParseResults(io.LimitReader(resp.Body, maxPageBytes), maxResults)
}

// ParseResults extracts result links from a DuckDuckGo HTML page. Ads and
// links that do not resolve to an http(s) URL are skipped.
func ParseResults(r io.Reader, maxResults int) ([]alternatives.SearchResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	var results []alternatives.SearchResult
	for n := range doc.Descendants() {
		if maxResults > 0 && len(results) >= maxResults {
			break
		}
		if n.Type != html.ElementNode || n.DataAtom != atom.A || !hasClass(n, "result__a") {
			continue
		}
		target, ok := resolveLink(attr(n, "href"))
		if !ok {
			continue
		}
		results = append(results, alternatives.SearchResult{
			Title: strings.TrimSpace(textOf(n)),
			URL:   target,
		})
	}
	return results, nil
}

// resolveLink unwraps DuckDuckGo's /l/?uddg= redirect links.
func resolveLink(href string) (string, bool) {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if strings.HasSuffix(u.Hostname(), "duckduckgo.com") {
		if u.Path != "/l/" {
			return "", false
		}
		target := u.Query().Get("uddg")
		if target == "" {
			return "", false
		}
		return resolveLink(target)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return sb.String()
}
