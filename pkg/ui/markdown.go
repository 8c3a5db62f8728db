package ui

import (
	"fmt"
	"strings"

	"github.com/aiyaulmo/verksamhetscykel/pkg/carousel"
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

// Mapping from ring and type ids to the Swedish display names used in the
// planning wheel.
var ringNames = map[model.Ring]string{
	model.RingLangtidsplanering:          "Långtidsplanering",
	model.RingPlanering:                  "Planering",
	model.RingGenomforandeOchUppfoljning: "Genomförande och uppföljning",
	model.RingUppfoljningOchAnalys:       "Uppföljning och analys",
	model.RingManad:                      "Månad",
}

var typeNames = map[model.EventType]string{
	model.TypeBeslut:         "Beslut",
	model.TypeInlamning:      "Inlämning",
	model.TypeDialogGemensam: "Dialog (gemensam)",
	model.TypeDialogEnskild:  "Dialog (enskild)",
	model.TypeOmvarldsanalys: "Omvärldsanalys",
}

// eventMarkdown builds the detail panel content for one event at the given
// carousel phase.
func eventMarkdown(e model.Event, phase carousel.Phase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Label)

	switch phase {
	case carousel.PhaseDescription:
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n", e.Description)
		} else {
			b.WriteString("*Ingen beskrivning.*\n")
		}

	case carousel.PhaseResponsible:
		b.WriteString("## Ansvarig\n\n")
		if e.Responsible != "" {
			fmt.Fprintf(&b, "%s\n", e.Responsible)
		} else {
			b.WriteString("*Ingen ansvarig angiven.*\n")
		}

	default:
		fmt.Fprintf(&b, "**Datum:** %s", e.Date)
		if w := e.Week(); w > 0 {
			fmt.Fprintf(&b, " (vecka %d)", w)
		}
		b.WriteString("\n\n")
		if name, ok := ringNames[e.Ring]; ok {
			fmt.Fprintf(&b, "**Ring:** %s\n\n", name)
		}
		if name, ok := typeNames[e.Type]; ok {
			fmt.Fprintf(&b, "**Typ:** %s\n\n", name)
		}
		var facets []string
		if e.Verksamhet {
			facets = append(facets, "verksamhet")
		}
		if e.Ekonomi {
			facets = append(facets, "ekonomi")
		}
		if e.Kvalitet {
			facets = append(facets, "kvalitet")
		}
		if len(facets) > 0 {
			fmt.Fprintf(&b, "**Kategori:** %s\n", strings.Join(facets, ", "))
		}
	}

	fmt.Fprintf(&b, "\n---\n*%d/%d*\n", int(phase)+1, carousel.PhaseCount)
	return b.String()
}

// eventClipboardText is the plain-text form used when copying an event.
func eventClipboardText(e model.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s", e.Label, e.Date)
	if name, ok := ringNames[e.Ring]; ok {
		fmt.Fprintf(&b, "\nRing: %s", name)
	}
	if e.Responsible != "" {
		fmt.Fprintf(&b, "\nAnsvarig: %s", e.Responsible)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", e.Description)
	}
	b.WriteString("\n")
	return b.String()
}
