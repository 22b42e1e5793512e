package analysis

import "strings"

var browserPages = map[string]struct{}{
	"newtab":          {},
	"chrome://newtab": {},
	"about:blank":     {},
}

var browserSchemes = []string{"chrome://", "about:", "edge://"}

// IsBrowserPage reports whether domain names a browser-internal page that
// has no legal documents. It is applied to the raw input, before scheme
// normalisation.
func IsBrowserPage(domain string) bool {
	if _, ok := browserPages[domain]; ok {
		return true
	}
	for _, prefix := range browserSchemes {
		if strings.HasPrefix(domain, prefix) {
			return true
		}
	}
	return false
}

// NormalizeDomain prefixes "http://" when domain carries no http(s) scheme.
func NormalizeDomain(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "http://" + domain
}

// genericSubdomains are skipped when deriving a brand name.
var genericSubdomains = map[string]struct{}{
	"www": {},
	"app": {},
	"web": {},
}

// BrandName derives the short name used to ask for similar services: the
// first dot-separated label after the scheme, skipping www/app/web.
//
//	https://www.example.com/page -> example
//	https://shop.example.com     -> shop
func BrandName(domain string) string {
	host := domain
	if i := strings.LastIndex(host, "//"); i >= 0 {
		host = host[i+2:]
	}
	labels := strings.Split(host, ".")
	name := labels[0]
	if _, generic := genericSubdomains[name]; generic && len(labels) > 1 {
		name = labels[1]
	}
	return name
}
