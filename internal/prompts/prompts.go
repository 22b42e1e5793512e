// Package prompts holds the embedded prompt catalog used by the locator,
// scorer, alternatives and policy modules.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Prompt names.
const (
	DocumentLocator   = "document_locator"  // data: LocatorData
	TrustScore        = "trust_score"       // data: TrustScoreData
	SimilarServices   = "similar_services"  // data: SimilarServicesData
	PolicyElaborate   = "policy_elaborate"  // follow-up turn for unsafe policies
	SecurityElaborate = "security_elaborate"
	SecuritySafety    = "security_safety"
)

type LocatorData struct {
	Domain string
}

type TrustScoreData struct {
	Findings   string
	SafeMarker string
}

type SimilarServicesData struct {
	Brand string
}

//go:embed prompts.yaml
var embedded []byte

// Catalog is a parsed set of named prompt templates.
type Catalog struct {
	templates map[string]*template.Template
}

type catalogFile struct {
	Prompts map[string]string `yaml:"prompts"`
}

// Load parses a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse prompt catalog: %w", err)
	}
	if len(file.Prompts) == 0 {
		return nil, fmt.Errorf("prompt catalog is empty")
	}

	c := &Catalog{templates: make(map[string]*template.Template, len(file.Prompts))}
	for name, body := range file.Prompts {
		tmpl, err := template.New(name).Option("missingkey=error").Parse(body)
		if err != nil {
			return nil, fmt.Errorf("parse prompt %q: %w", name, err)
		}
		c.templates[name] = tmpl
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(embedded)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Render executes the named prompt with data and trims surrounding whitespace.
func (c *Catalog) Render(name string, data any) (string, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}

// MustRender is Render for prompts without template data.
func (c *Catalog) MustRender(name string) string {
	out, err := c.Render(name, nil)
	if err != nil {
		panic(err)
	}
	return out
}
