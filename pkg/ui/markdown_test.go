package ui

import (
	"strings"
	"testing"

	"github.com/aiyaulmo/verksamhetscykel/pkg/carousel"
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

func TestEventMarkdownPhases(t *testing.T) {
	e := model.Event{
		ID:          "ev_1",
		Date:        "2026-02-10",
		Ring:        model.RingPlanering,
		Type:        model.TypeBeslut,
		Label:       "Budgetbeslut",
		Description: "Fullmäktige fastställer budgetramarna.",
		Responsible: "Ekonomichef",
		Ekonomi:     true,
	}

	tests := []struct {
		name    string
		phase   carousel.Phase
		want    []string
		exclude []string
	}{
		{
			name:    "overview shows date ring and type",
			phase:   carousel.PhaseOverview,
			want:    []string{"Budgetbeslut", "2026-02-10", "vecka 7", "Planering", "Beslut", "ekonomi", "1/3"},
			exclude: []string{"Fullmäktige", "Ekonomichef"},
		},
		{
			name:    "description phase shows long text",
			phase:   carousel.PhaseDescription,
			want:    []string{"Budgetbeslut", "Fullmäktige fastställer", "2/3"},
			exclude: []string{"Ekonomichef"},
		},
		{
			name:    "responsible phase shows owner",
			phase:   carousel.PhaseResponsible,
			want:    []string{"Budgetbeslut", "Ansvarig", "Ekonomichef", "3/3"},
			exclude: []string{"Fullmäktige"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eventMarkdown(e, tt.phase)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in:\n%s", w, got)
				}
			}
			for _, x := range tt.exclude {
				if strings.Contains(got, x) {
					t.Errorf("unexpected %q in:\n%s", x, got)
				}
			}
		})
	}
}

func TestEventMarkdownEmptyFields(t *testing.T) {
	e := model.Event{ID: "ev_9", Date: "2026-06-01", Label: "Tom"}

	if got := eventMarkdown(e, carousel.PhaseDescription); !strings.Contains(got, "Ingen beskrivning") {
		t.Error("missing placeholder for empty description")
	}
	if got := eventMarkdown(e, carousel.PhaseResponsible); !strings.Contains(got, "Ingen ansvarig") {
		t.Error("missing placeholder for empty responsible")
	}
}

func TestEventClipboardText(t *testing.T) {
	e := model.Event{
		Date:        "2026-02-10",
		Ring:        model.RingPlanering,
		Label:       "Budgetbeslut",
		Responsible: "Ekonomichef",
	}
	got := eventClipboardText(e)
	for _, w := range []string{"Budgetbeslut", "2026-02-10", "Ring: Planering", "Ansvarig: Ekonomichef"} {
		if !strings.Contains(got, w) {
			t.Errorf("missing %q in clipboard text", w)
		}
	}
}

func TestThemeRingAndTypeLookup(t *testing.T) {
	th := DefaultTheme(nil)

	if th.RingColor(model.RingPlanering) != th.Planering {
		t.Error("planering ring color mismatch")
	}
	if th.RingColor("okand") != th.Subtext {
		t.Error("unknown ring should fall back to subtext color")
	}

	icon, color := th.TypeIcon(model.TypeBeslut)
	if icon == "" || color != th.Beslut {
		t.Error("beslut icon lookup failed")
	}
	icon, color = th.TypeIcon("okand")
	if icon != "•" || color != th.Subtext {
		t.Error("unknown type should fall back to bullet")
	}
}
