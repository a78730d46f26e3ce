package ui

import "testing"

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown) = %q, want Nightfox", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate) = %q", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"unknown", "Nightfox"},
	}
	for _, tc := range cases {
		if got := NextTheme(tc.in); got != tc.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames = %v, want 3 names", names)
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Fatalf("theme %q not registered", name)
		}
	}
}

func TestTheme_DerivedStyles(t *testing.T) {
	th := GetTheme("Kanagawa")

	tabStyles := th.TabStyles(th.Surface)
	if tabStyles.Bracket {
		t.Fatal("themed tab styles should not bracket the active label")
	}
	if tabStyles.Separator == "" {
		t.Fatal("themed tab styles need a separator")
	}

	cs := th.ContentStyles()
	if string(cs.TableBorder) != th.Border {
		t.Fatalf("TableBorder = %q, want %q", cs.TableBorder, th.Border)
	}
}
