package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menukit/pkg/menutypes"
)

// newTestRegistry builds a registry with the given name groups; the first
// name in each group is the primary, the rest aliases.
func newTestRegistry(t *testing.T, groups ...[]string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, names := range groups {
		_, err := r.Register(nop, WithNames(names[0], names[1:]...))
		require.NoError(t, err)
	}
	return r
}

func TestResolve_ByIndex(t *testing.T) {
	r := newTestRegistry(t, []string{"hello"}, []string{"add", "plus"}, []string{"circle"})

	for i, want := range []string{"hello", "add", "circle"} {
		res := r.Resolve(fmt.Sprintf("%d", i+1))
		require.Equal(t, menutypes.ResolutionMatched, res.Kind)
		assert.Equal(t, want, res.Option.Name)
	}
}

func TestResolve_IndexOutOfRangeFallsThrough(t *testing.T) {
	r := newTestRegistry(t, []string{"hello"}, []string{"42"})

	// Out of range as an index, but exactly a registered name.
	res := r.Resolve("42")
	require.Equal(t, menutypes.ResolutionMatched, res.Kind)
	assert.Equal(t, "42", res.Option.Name)

	// Out of range and no name matches.
	res = r.Resolve("7")
	assert.Equal(t, menutypes.ResolutionNotFound, res.Kind)
}

func TestResolve_IndexBeatsNameMatch(t *testing.T) {
	r := newTestRegistry(t, []string{"one"}, []string{"2"})

	// "2" is in index range, so position 2 wins over the option named "2"...
	res := r.Resolve("2")
	require.Equal(t, menutypes.ResolutionMatched, res.Kind)
	assert.Equal(t, "2", res.Option.Name)

	// ...which here is the same option; "1" resolves by position, not name.
	res = r.Resolve("1")
	require.Equal(t, menutypes.ResolutionMatched, res.Kind)
	assert.Equal(t, "one", res.Option.Name)
}

func TestResolve_QuitTokens(t *testing.T) {
	r := newTestRegistry(t, []string{"hello"})

	for _, token := range []string{"quit", "QUIT", "exit", "q", "  q  ", "Exit"} {
		res := r.Resolve(token)
		assert.Equal(t, menutypes.ResolutionQuit, res.Kind, "token %q", token)
	}
}

func TestResolve_ExactNameAndAlias(t *testing.T) {
	r := newTestRegistry(t, []string{"add", "plus"}, []string{"hello"})

	byName := r.Resolve("add")
	byAlias := r.Resolve("plus")
	require.Equal(t, menutypes.ResolutionMatched, byName.Kind)
	require.Equal(t, menutypes.ResolutionMatched, byAlias.Kind)
	assert.Same(t, byName.Option, byAlias.Option)

	res := r.Resolve("  ADD  ")
	require.Equal(t, menutypes.ResolutionMatched, res.Kind)
	assert.Equal(t, "add", res.Option.Name)
}

func TestResolve_PrefixMatching(t *testing.T) {
	tests := []struct {
		name           string
		groups         [][]string
		token          string
		wantKind       menutypes.ResolutionKind
		wantName       string
		wantCandidates []string
	}{
		{
			name:           "shared prefix is ambiguous",
			groups:         [][]string{{"hello"}, {"help"}},
			token:          "hel",
			wantKind:       menutypes.ResolutionAmbiguous,
			wantCandidates: []string{"hello", "help"},
		},
		{
			name:     "longer prefix disambiguates",
			groups:   [][]string{{"hello"}, {"help"}},
			token:    "hell",
			wantKind: menutypes.ResolutionMatched,
			wantName: "hello",
		},
		{
			name:     "exact match wins over being a prefix of another",
			groups:   [][]string{{"help"}, {"helpers"}},
			token:    "help",
			wantKind: menutypes.ResolutionMatched,
			wantName: "help",
		},
		{
			name:     "aliases of one option count as one candidate",
			groups:   [][]string{{"status", "state"}},
			token:    "sta",
			wantKind: menutypes.ResolutionMatched,
			wantName: "status",
		},
		{
			name:     "prefix is case-insensitive",
			groups:   [][]string{{"hello"}},
			token:    "  HEL  ",
			wantKind: menutypes.ResolutionMatched,
			wantName: "hello",
		},
		{
			name:     "prefix via alias resolves its option",
			groups:   [][]string{{"add", "plus"}, {"hello"}},
			token:    "pl",
			wantKind: menutypes.ResolutionMatched,
			wantName: "add",
		},
		{
			name:     "no prefix reachable",
			groups:   [][]string{{"hello"}, {"add"}},
			token:    "xyz",
			wantKind: menutypes.ResolutionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t, tt.groups...)
			res := r.Resolve(tt.token)

			require.Equal(t, tt.wantKind, res.Kind)
			switch tt.wantKind {
			case menutypes.ResolutionMatched:
				assert.Equal(t, tt.wantName, res.Option.Name)
			case menutypes.ResolutionAmbiguous:
				assert.Equal(t, tt.wantCandidates, res.Candidates)
			}
		})
	}
}

func TestResolve_NotFoundCarriesTokenAndSuggestions(t *testing.T) {
	r := newTestRegistry(t, []string{"hello"}, []string{"circle"})

	res := r.Resolve("  helo  ")
	require.Equal(t, menutypes.ResolutionNotFound, res.Kind)
	assert.Equal(t, "helo", res.Token)
	assert.Equal(t, []string{"hello"}, res.Suggestions)

	res = r.Resolve("zzzzzz")
	require.Equal(t, menutypes.ResolutionNotFound, res.Kind)
	assert.Empty(t, res.Suggestions)
}

func TestResolve_EmptyToken(t *testing.T) {
	r := newTestRegistry(t, []string{"hello"})

	res := r.Resolve("   ")
	require.Equal(t, menutypes.ResolutionNotFound, res.Kind)
	assert.Equal(t, "", res.Token)
	assert.Empty(t, res.Suggestions)
}
