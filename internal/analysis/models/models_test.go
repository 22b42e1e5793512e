package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalDocumentSet(t *testing.T) {
	t.Run("privacy policy precedes terms", func(t *testing.T) {
		set := LegalDocumentSet{PrivacyPolicyURL: "https://x.com/privacy", TermsURL: "https://x.com/terms"}
		assert.Equal(t, []string{"https://x.com/privacy", "https://x.com/terms"}, set.URLs())
		assert.False(t, set.Empty())
	})

	t.Run("absent documents are skipped", func(t *testing.T) {
		set := LegalDocumentSet{TermsURL: "https://x.com/terms"}
		assert.Equal(t, []string{"https://x.com/terms"}, set.URLs())
	})

	t.Run("empty set", func(t *testing.T) {
		assert.True(t, LegalDocumentSet{IsDirect: true}.Empty())
		assert.Empty(t, LegalDocumentSet{}.URLs())
	})
}

func TestAllSafe(t *testing.T) {
	safe := Verdict{SafeMarker}
	unsafe := Verdict{"Privacy Concerns Detected", "sells data"}

	assert.True(t, AllSafe([]Verdict{safe, safe}))
	assert.False(t, AllSafe([]Verdict{safe, unsafe}))
	assert.False(t, AllSafe([]Verdict{{"policy safe!"}}), "comparison is exact")
	assert.False(t, AllSafe([]Verdict{{" Policy Safe!"}}), "comparison does not trim")
	assert.False(t, AllSafe([]Verdict{{}}))
}

func TestNewTrustScore(t *testing.T) {
	for n := 1; n <= 10; n++ {
		assert.Equal(t, TrustScore(n), NewTrustScore(n))
		assert.True(t, NewTrustScore(n).Known())
	}
	for _, n := range []int{-5, -1, 0, 11, 100} {
		assert.Equal(t, UnknownTrustScore, NewTrustScore(n))
		assert.False(t, NewTrustScore(n).Known())
	}
}

func TestTimedOutAlternatives(t *testing.T) {
	assert.Equal(t, AlternativeSet{"error": "Retrieving alternatives timed out"}, TimedOutAlternatives())
}
