package content

import (
	"strings"
	"testing"
)

func sampleSection() Section {
	return Section{
		Key:        "metrics",
		Title:      "Metrics",
		Paragraphs: []string{"Errors are summarised by a single number."},
		Lists: []List{{
			Heading: "Notes",
			Items:   []string{"Scale matters", "Outliers matter"},
		}},
		Metrics: []Metric{
			{Name: "MAE", Formula: "mean(|e|)", Range: "[0, ∞)", Better: "lower", Description: "Average absolute error."},
			{Name: "RMSE", Formula: "sqrt(MSE)", Range: "[0, ∞)", Better: "lower"},
		},
	}
}

func TestPanel_RendersAllParts(t *testing.T) {
	out := Panel{Section: sampleSection()}.Render(100)

	for _, want := range []string{"Metrics", "summarised", "Notes", "•", "Scale", "MAE", "RMSE", "Formula", "Average"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Panel output missing %q:\n%s", want, out)
		}
	}
}

func TestPanel_UsesSharedStyles(t *testing.T) {
	styles := DefaultStyles()
	p := Panel{Section: Section{Title: "Overview"}, Styles: &styles}
	if got := p.Render(40); !strings.Contains(got, "Overview") {
		t.Fatalf("Render = %q, want title", got)
	}
}

func TestPanel_NarrowWidthIsClamped(t *testing.T) {
	out := Panel{Section: Section{Paragraphs: []string{"short words only here"}}}.Render(0)
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > minPanelWidth {
			t.Fatalf("line %q wider than %d", line, minPanelWidth)
		}
	}
}

func TestHangingIndent(t *testing.T) {
	got := hangingIndent("-", "one two three four five six", DefaultStyles().Text, 12)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", got)
	}
	if !strings.HasPrefix(lines[0], "- one") {
		t.Fatalf("first line = %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "  ") {
			t.Fatalf("continuation line %q not indented", l)
		}
	}
}

func TestPlainPanel(t *testing.T) {
	out := PlainPanel{Section: sampleSection()}.Render(80)

	if !strings.HasPrefix(out, "METRICS\n=======") {
		t.Fatalf("plain output should start with underlined title:\n%s", out)
	}
	for _, want := range []string{"Notes:", "  - Scale matters", "MAE", "sqrt(MSE)", "Average absolute error."} {
		if !strings.Contains(out, want) {
			t.Fatalf("plain output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain output contains escape sequences")
	}
}

func TestCatalogTable(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	out := CatalogTable(c).Render()
	for _, want := range []string{"Regression", "clustering", "overview, tests, metrics"} {
		if !strings.Contains(out, want) {
			t.Fatalf("CatalogTable missing %q:\n%s", want, out)
		}
	}
}
