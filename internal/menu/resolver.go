package menu

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"menukit/pkg/menutypes"
)

// maxSuggestionDistance bounds how far a near-miss may be from the typed
// token to appear in "did you mean" suggestions.
const maxSuggestionDistance = 2

// maxSuggestions caps how many near-misses a NotFound outcome carries.
const maxSuggestions = 3

// Resolve matches one user token against the registry. Matching order:
// 1-based index in registration order, reserved quit token, exact name or
// alias, then unique prefix. An exact match always beats a prefix match,
// and an in-range index beats everything. Comparison is case-insensitive
// and ignores surrounding whitespace; display names keep their original
// case.
func (r *Registry) Resolve(token string) menutypes.Resolution {
	trimmed := strings.TrimSpace(token)
	folded := strings.ToLower(trimmed)

	if n, ok := parseIndex(folded); ok && n >= 1 && n <= len(r.order) {
		return menutypes.Resolution{
			Kind:   menutypes.ResolutionMatched,
			Option: r.order[n-1],
		}
	}

	if _, ok := reservedTokens[folded]; ok {
		return menutypes.Resolution{Kind: menutypes.ResolutionQuit}
	}

	if opt, ok := r.index[folded]; ok {
		return menutypes.Resolution{
			Kind:   menutypes.ResolutionMatched,
			Option: opt,
		}
	}

	if folded != "" {
		if res, ok := r.resolvePrefix(folded); ok {
			return res
		}
	}

	return menutypes.Resolution{
		Kind:        menutypes.ResolutionNotFound,
		Token:       trimmed,
		Suggestions: r.suggest(folded),
	}
}

// resolvePrefix matches the folded token as a leading substring of
// registered names and aliases. Multiple aliases of one option collapse
// into a single candidate; only reaching two or more distinct options
// makes the token ambiguous.
func (r *Registry) resolvePrefix(folded string) (menutypes.Resolution, bool) {
	candidates := make(map[*menutypes.Option]struct{})
	for key, opt := range r.index {
		if strings.HasPrefix(key, folded) {
			candidates[opt] = struct{}{}
		}
	}

	switch len(candidates) {
	case 0:
		return menutypes.Resolution{}, false
	case 1:
		for opt := range candidates {
			return menutypes.Resolution{
				Kind:   menutypes.ResolutionMatched,
				Option: opt,
			}, true
		}
	}

	names := make([]string, 0, len(candidates))
	for opt := range candidates {
		names = append(names, opt.Name)
	}
	sort.Strings(names)
	return menutypes.Resolution{
		Kind:       menutypes.ResolutionAmbiguous,
		Candidates: names,
	}, true
}

// suggest returns up to maxSuggestions registered names within edit
// distance maxSuggestionDistance of the token, nearest first.
func (r *Registry) suggest(folded string) []string {
	if folded == "" {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	best := make(map[*menutypes.Option]scored)
	for key, opt := range r.index {
		dist := levenshtein.ComputeDistance(folded, key)
		if dist > maxSuggestionDistance {
			continue
		}
		if prev, ok := best[opt]; !ok || dist < prev.dist {
			best[opt] = scored{name: opt.Name, dist: dist}
		}
	}
	if len(best) == 0 {
		return nil
	}

	ranked := make([]scored, 0, len(best))
	for _, s := range best {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.name
	}
	return names
}

// parseIndex reports whether the folded token is a plain digit string and
// its numeric value. Signs, spaces, and decimal points disqualify the token
// from index selection and let it fall through to name matching.
func parseIndex(folded string) (int, bool) {
	if folded == "" {
		return 0, false
	}
	for _, r := range folded {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(folded)
	if err != nil {
		return 0, false
	}
	return n, true
}
