package topic

import (
	"strings"

	"github.com/francisfiscal/retrieval/core"
)

// Rule is a static routing rule. A rule matches when any of its MatchTerms
// appears as a substring of the lowercased user query.
type Rule struct {
	// Name identifies the topic for logging and tests.
	Name string

	// MatchTerms are lowercase substrings, any of which triggers the rule.
	MatchTerms []string

	// EnhancedQuery is the canonical statutory-vocabulary query embedded
	// in place of the raw query.
	EnhancedQuery string

	// Keywords are scored against candidate text by the re-ranker.
	Keywords []string
}

// Matches reports whether the rule applies to the lowercased query.
func (r Rule) Matches(lowered string) bool {
	for _, term := range r.MatchTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// Enhancement is the routing outcome for one query.
type Enhancement struct {
	// Query is the text handed to the embedder: the matched rule's
	// EnhancedQuery, or the raw query when no rule matched.
	Query string

	// Keywords is the keyword set for re-ranking.
	Keywords []string

	// Rule is the name of the matched rule, empty on fallback.
	Rule string
}

// Router routes queries for one jurisdiction's rule table.
type Router struct {
	rules []Rule
}

// NewRouter creates a router over an explicit rule table. Rules are
// evaluated in slice order; the first match wins, so tables must list
// specific topics (e.g. plus-value rules) before generic catch-alls.
func NewRouter(rules []Rule) *Router {
	return &Router{rules: rules}
}

// RouterFor returns the router for the jurisdiction owning the given
// corpus. CGI and BOFiP share the French table.
func RouterFor(kind core.SourceKind) *Router {
	switch kind {
	case core.SourceKindCGI, core.SourceKindBOFiP:
		return NewRouter(frenchRules)
	case core.SourceKindAndorra:
		return NewRouter(andorraRules)
	case core.SourceKindSwitzerland:
		return NewRouter(switzerlandRules)
	case core.SourceKindLuxembourg:
		return NewRouter(luxembourgRules)
	default:
		return NewRouter(nil)
	}
}

// Enhance maps a raw user query to its canonical topic query and keyword
// set. Pure function: no state, deterministic for a fixed table.
func (r *Router) Enhance(rawQuery string) Enhancement {
	lowered := strings.ToLower(rawQuery)

	for _, rule := range r.rules {
		if rule.Matches(lowered) {
			return Enhancement{
				Query:    rule.EnhancedQuery,
				Keywords: rule.Keywords,
				Rule:     rule.Name,
			}
		}
	}

	return Enhancement{
		Query:    rawQuery,
		Keywords: GenericKeywords(rawQuery),
	}
}
