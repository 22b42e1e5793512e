// Package extract fetches pages and pulls out what the policy and security
// assistants read: the prose of legal documents and the security-relevant
// markup of a site.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"policyguard/pkg/platform/sentinel"
)

const (
	defaultUserAgent = "Mozilla/5.0 (compatible; policyguard/1.0)"
	maxPageBytes     = 5 << 20
	// maxTagChars drops markup tags longer than this from the security extract.
	maxTagChars = 500
)

// ErrNoReadableText is returned when a page has no headings or paragraphs.
var ErrNoReadableText = errors.New("no readable text found in the page")

var (
	textAtoms   = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.P}
	markupAtoms = []atom.Atom{atom.A, atom.Form, atom.Script, atom.Meta}
)

type Config struct {
	// Timeout bounds each fetch; the caller's context may cut it shorter.
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Fetcher implements policy.TextExtractor and policy.MarkupExtractor.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func New(cfg Config) *Fetcher {
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// ExtractText returns the page's h1-h3 and paragraph text, one element per line.
func (f *Fetcher) ExtractText(ctx context.Context, url string) (string, error) {
	doc, err := f.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	text := ReadableText(doc)
	if text == "" {
		return "", ErrNoReadableText
	}
	return text, nil
}

// ExtractMarkup returns hidden elements followed by short link, form,
// script and meta tags, one per line.
func (f *Fetcher) ExtractMarkup(ctx context.Context, url string) (string, error) {
	doc, err := f.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return SecurityMarkup(doc)
}

func (f *Fetcher) fetch(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: %s: %w", url, resp.Status, sentinel.ErrUnavailable)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// ReadableText joins the stripped text of every heading and paragraph.
// Within an element, text fragments are trimmed and concatenated.
func ReadableText(doc *html.Node) string {
	var lines []string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || !slices.Contains(textAtoms, n.DataAtom) {
			continue
		}
		if text := strippedText(n); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

func strippedText(n *html.Node) string {
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(d.Data))
		}
	}
	return sb.String()
}

// SecurityMarkup serialises the markup an assistant needs to judge a page.
func SecurityMarkup(doc *html.Node) (string, error) {
	var parts []string

	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && isHidden(n) {
			rendered, err := render(n)
			if err != nil {
				return "", err
			}
			parts = append(parts, rendered)
		}
	}

	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || !slices.Contains(markupAtoms, n.DataAtom) {
			continue
		}
		rendered, err := render(n)
		if err != nil {
			return "", err
		}
		if len(rendered) > maxTagChars {
			continue
		}
		parts = append(parts, rendered)
	}

	return strings.Join(parts, "\n"), nil
}

func isHidden(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key != "style" {
			continue
		}
		style := strings.ToLower(a.Val)
		return strings.Contains(style, "display:none") || strings.Contains(style, "opacity:0")
	}
	return false
}

func render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("render <%s>: %w", n.Data, err)
	}
	return buf.String(), nil
}
