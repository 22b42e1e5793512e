package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"policyguard/pkg/platform/sentinel"
)

const policyPage = `<!DOCTYPE html>
<html><head><title>Privacy</title><script>var tracking = 1;</script></head>
<body>
<h1>  Privacy   Policy </h1>
<nav><a href="/">Home</a></nav>
<p>We collect <strong>your email</strong> address.</p>
<p>   </p>
<div>Not a paragraph</div>
<h3>Sharing</h3>
</body></html>`

func parse(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestReadableText(t *testing.T) {
	assert.Equal(t, "Privacy   Policy\nWe collectyour emailaddress.\nSharing", ReadableText(parse(t, policyPage)))
	assert.Empty(t, ReadableText(parse(t, `<html><body><div>nothing</div></body></html>`)))
}

func TestSecurityMarkup(t *testing.T) {
	long := strings.Repeat("x", maxTagChars)
	page := `<html><head><meta charset="utf-8"><script src="https://cdn.example/a.js"></script></head><body>
<div style="DISPLAY:NONE"><input name="card"></div>
<span style="opacity:0">hidden</span>
<a href="/login">Login</a>
<a href="/long">` + long + `</a>
<form action="/pay"></form>
</body></html>`

	markup, err := SecurityMarkup(parse(t, page))
	require.NoError(t, err)

	lines := strings.Split(markup, "\n")
	assert.Equal(t, []string{
		`<div style="DISPLAY:NONE"><input name="card"/></div>`,
		`<span style="opacity:0">hidden</span>`,
		`<meta charset="utf-8"/>`,
		`<script src="https://cdn.example/a.js"></script>`,
		`<a href="/login">Login</a>`,
		`<form action="/pay"></form>`,
	}, lines)
}

func TestFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/privacy":
			_, _ = w.Write([]byte(policyPage))
		case "/blank":
			_, _ = w.Write([]byte(`<html><body><img src="x.png"></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()
	f := New(Config{})
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		text, err := f.ExtractText(ctx, server.URL+"/privacy")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "Privacy   Policy\n"))
	})

	t.Run("no readable text", func(t *testing.T) {
		_, err := f.ExtractText(ctx, server.URL+"/blank")
		assert.ErrorIs(t, err, ErrNoReadableText)
	})

	t.Run("error status", func(t *testing.T) {
		_, err := f.ExtractText(ctx, server.URL+"/missing")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("markup", func(t *testing.T) {
		markup, err := f.ExtractMarkup(ctx, server.URL+"/privacy")
		require.NoError(t, err)
		assert.Contains(t, markup, `<a href="/">Home</a>`)
		assert.Contains(t, markup, `<script>var tracking = 1;</script>`)
	})
}
