package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	t.Run("locator embeds the domain", func(t *testing.T) {
		out, err := c.Render(DocumentLocator, LocatorData{Domain: "http://example.com"})
		require.NoError(t, err)
		assert.Contains(t, out, "domain name: http://example.com.")
		assert.Contains(t, out, `"terms_and_conditions"`)
	})

	t.Run("trust score embeds findings", func(t *testing.T) {
		out, err := c.Render(TrustScore, TrustScoreData{Findings: "[[Policy Safe!]]", SafeMarker: "Policy Safe!"})
		require.NoError(t, err)
		assert.Contains(t, out, "[[Policy Safe!]]")
		assert.Contains(t, out, "single integer")
	})

	t.Run("similar services embeds the brand", func(t *testing.T) {
		out, err := c.Render(SimilarServices, SimilarServicesData{Brand: "spotify"})
		require.NoError(t, err)
		assert.Contains(t, out, "similar to spotify.")
	})

	t.Run("fixed follow-ups", func(t *testing.T) {
		assert.Equal(t, "Elaborate with quote", c.MustRender(PolicyElaborate))
		assert.Equal(t, "Elaborate", c.MustRender(SecurityElaborate))
		assert.Equal(t, "How is the safety", c.MustRender(SecuritySafety))
	})

	t.Run("unknown prompt", func(t *testing.T) {
		_, err := c.Render("nope", nil)
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing template field", func(t *testing.T) {
		c, err := Load([]byte("prompts:\n  greet: \"hello {{.Name}}\"\n"))
		require.NoError(t, err)
		_, err = c.Render("greet", map[string]string{})
		assert.Error(t, err)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := Load([]byte("prompts: {}\n"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load([]byte("prompts: [\n"))
		assert.Error(t, err)
	})
}
