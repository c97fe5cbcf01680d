package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francisfiscal/retrieval/core"
)

func frenchRouter() *Router {
	return RouterFor(core.SourceKindCGI)
}

func TestEnhance_TMI(t *testing.T) {
	enhancement := frenchRouter().Enhance("Quelle est ma TMI pour 30000 euros ?")

	assert.Equal(t, "bareme_ir", enhancement.Rule)
	assert.Contains(t, enhancement.Query, "article 197")
	assert.Contains(t, enhancement.Query, "barème progressif")
	assert.Contains(t, enhancement.Keywords, "tmi")
	assert.Contains(t, enhancement.Keywords, "tranche")
	assert.Contains(t, enhancement.Keywords, "barème")
}

func TestEnhance_CaseInsensitive(t *testing.T) {
	lower := frenchRouter().Enhance("quelle est ma tmi ?")
	upper := frenchRouter().Enhance("QUELLE EST MA TMI ?")

	assert.Equal(t, lower.Rule, upper.Rule)
	assert.Equal(t, lower.Query, upper.Query)
}

func TestEnhance_FirstMatchWins(t *testing.T) {
	// Mentions both a plus-value topic and the income-tax barème; the
	// plus-value rule sits earlier in the table and must win.
	enhancement := frenchRouter().Enhance(
		"Comment ma plus-value immobilière entre-t-elle dans le barème de l'impôt sur le revenu ?")

	assert.Equal(t, "plus_value_immobiliere", enhancement.Rule)
	assert.Contains(t, enhancement.Query, "article 150 U")
}

func TestEnhance_SpecificBeforeGeneric(t *testing.T) {
	tests := []struct {
		query    string
		wantRule string
	}{
		{"vente de ma maison secondaire, quel impôt sur le revenu ?", "plus_value_immobiliere"},
		{"imposition des dividendes au barème ou flat tax ?", "flat_tax_dividendes"},
		{"lmnp et impôt sur le revenu", "location_meublee"},
		{"auto-entrepreneur impôt sur le revenu", "micro_entreprise"},
		{"succession de mon père", "succession_donation"},
		{"rachat assurance-vie après 8 ans", "assurance_vie"},
		{"suis-je résident fiscal français ?", "domicile_fiscal"},
		{"taux de TVA sur les travaux", "tva"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			enhancement := frenchRouter().Enhance(tt.query)
			assert.Equal(t, tt.wantRule, enhancement.Rule)
		})
	}
}

func TestEnhance_Fallback(t *testing.T) {
	raw := "Déclaration des revenus exceptionnels perçus en 2024"
	enhancement := frenchRouter().Enhance(raw)

	assert.Empty(t, enhancement.Rule)
	assert.Equal(t, raw, enhancement.Query, "fallback must keep the raw query")
	assert.Contains(t, enhancement.Keywords, "déclaration")
	assert.Contains(t, enhancement.Keywords, "revenus")
	assert.Contains(t, enhancement.Keywords, "exceptionnels")
	assert.NotContains(t, enhancement.Keywords, "en", "short tokens are dropped")
	assert.NotContains(t, enhancement.Keywords, "des")
}

func TestEnhance_Jurisdictions(t *testing.T) {
	t.Run("andorra", func(t *testing.T) {
		enhancement := RouterFor(core.SourceKindAndorra).Enhance("Quel est le taux IRPF ?")
		assert.Equal(t, "ad_irpf", enhancement.Rule)
	})

	t.Run("switzerland", func(t *testing.T) {
		enhancement := RouterFor(core.SourceKindSwitzerland).Enhance("Déduction pilier 3a maximale")
		assert.Equal(t, "ch_pilier", enhancement.Rule)
	})

	t.Run("luxembourg", func(t *testing.T) {
		enhancement := RouterFor(core.SourceKindLuxembourg).Enhance("Quelle classe d'impôt pour un couple marié ?")
		assert.Equal(t, "lu_classes", enhancement.Rule)
	})

	t.Run("french rules do not leak", func(t *testing.T) {
		enhancement := RouterFor(core.SourceKindSwitzerland).Enhance("Quelle est ma TMI ?")
		assert.Empty(t, enhancement.Rule, "TMI is a French-table topic")
	})

	t.Run("bofip shares the french table", func(t *testing.T) {
		cgi := RouterFor(core.SourceKindCGI).Enhance("quelle est ma tmi ?")
		bofip := RouterFor(core.SourceKindBOFiP).Enhance("quelle est ma tmi ?")
		assert.Equal(t, cgi, bofip)
	})

	t.Run("unknown kind always falls back", func(t *testing.T) {
		enhancement := RouterFor(core.SourceKindUnknown).Enhance("quelle est ma tmi ?")
		assert.Empty(t, enhancement.Rule)
	})
}

func TestGenericKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "length threshold",
			query: "le taux de la taxe foncière",
			want:  []string{"taux", "taxe", "foncière"},
		},
		{
			name:  "stop words removed",
			query: "comment déclarer pour cette année",
			want:  []string{"déclarer", "année"},
		},
		{
			name:  "punctuation trimmed",
			query: "exonération, abattement !",
			want:  []string{"exonération", "abattement"},
		},
		{
			name:  "duplicates dropped",
			query: "abattement abattement abattement",
			want:  []string{"abattement"},
		},
		{
			name:  "empty query",
			query: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenericKeywords(tt.query)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFrenchRules_Integrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range frenchRules {
		assert.NotEmpty(t, rule.Name)
		assert.False(t, seen[rule.Name], "duplicate rule name %s", rule.Name)
		seen[rule.Name] = true

		assert.NotEmpty(t, rule.MatchTerms, "rule %s has no match terms", rule.Name)
		assert.NotEmpty(t, rule.EnhancedQuery, "rule %s has no enhanced query", rule.Name)
		assert.NotEmpty(t, rule.Keywords, "rule %s has no keywords", rule.Name)
	}
}
