package actions

import (
	"strings"
	"testing"
)

func TestNormalizeSupportsKeysAndAliasesInAnyCase(t *testing.T) {
	for _, action := range Default {
		if got := Default.Normalize(action.Key); got != action.Key {
			t.Fatalf("Normalize(%q) = %q want %q", action.Key, got, action.Key)
		}
		for _, alias := range action.Aliases {
			for _, variant := range []string{alias, strings.ToUpper(alias), " " + alias + " "} {
				if got := Default.Normalize(variant); got != action.Key {
					t.Fatalf("Normalize(%q) = %q want %q", variant, got, action.Key)
				}
			}
		}
	}
}

func TestNormalizeRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "   ", "unknown", "7", "searches"} {
		if got := Default.Normalize(raw); got != "" {
			t.Fatalf("Normalize(%q) = %q want empty", raw, got)
		}
	}
}

func TestLookupReturnsAction(t *testing.T) {
	action, ok := Default.Lookup("Q")
	if !ok {
		t.Fatalf("expected q to resolve")
	}
	if !action.Quit || action.Key != "0" {
		t.Fatalf("Lookup(Q) = %+v", action)
	}
	if _, ok := Default.Lookup("nope"); ok {
		t.Fatalf("expected nope to be unknown")
	}
}

func TestCatalogKeysAndAliasesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, action := range Default {
		names := append([]string{action.Key}, action.Aliases...)
		for _, name := range names {
			lower := strings.ToLower(name)
			if owner, ok := seen[lower]; ok && owner != action.Key {
				t.Fatalf("%q is claimed by both %s and %s", name, owner, action.Key)
			}
			seen[lower] = action.Key
		}
	}
}

func TestWrapIsCyclic(t *testing.T) {
	cases := []struct{ in, n, want int }{
		{0, 7, 0},
		{7, 7, 0},
		{-1, 7, 6},
		{-8, 7, 6},
		{15, 7, 1},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := Wrap(tc.in, tc.n); got != tc.want {
			t.Fatalf("Wrap(%d, %d) = %d want %d", tc.in, tc.n, got, tc.want)
		}
	}
}
