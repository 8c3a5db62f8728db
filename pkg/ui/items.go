package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
	"github.com/aiyaulmo/verksamhetscykel/pkg/selection"
	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

// EventItem wraps an event for the bubbles list.
type EventItem struct {
	Event model.Event
}

func (i EventItem) Title() string       { return i.Event.Label }
func (i EventItem) Description() string { return i.Event.Date }
func (i EventItem) FilterValue() string {
	return i.Event.Label + " " + i.Event.Date + " " + i.Event.Responsible
}

// EventDelegate renders one event row, dimming rows outside the current
// activation.
type EventDelegate struct {
	Theme      Theme
	Projection selection.Projection
	Resolver   *wheel.Resolver
}

func (d EventDelegate) Height() int                         { return 1 }
func (d EventDelegate) Spacing() int                        { return 0 }
func (d EventDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d EventDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ei, ok := item.(EventItem)
	if !ok {
		return
	}
	t := d.Theme
	e := ei.Event

	icon, typeColor := t.TypeIcon(e.Type)
	dateStr := e.Date
	if len(dateStr) >= 10 {
		dateStr = dateStr[5:10]
	}

	dimmed := false
	if d.Resolver != nil {
		dimmed = d.Projection.EventDimmed(d.Resolver.Index(e.Ring), e.Month(), e.Week())
	}

	var line string
	switch {
	case index == m.Index():
		line = t.Selected.Render(fmt.Sprintf("%s %s  %s", icon, dateStr, e.Label))
	case dimmed:
		line = "  " + t.Dimmed.Render(fmt.Sprintf("%s %s  %s", icon, dateStr, e.Label))
	default:
		iconStyled := t.Renderer.NewStyle().Foreground(typeColor).Render(icon)
		dateStyled := t.Renderer.NewStyle().Foreground(t.Subtext).Render(dateStr)
		line = "  " + iconStyled + " " + dateStyled + "  " + t.Base.Render(e.Label)
	}
	fmt.Fprint(w, line)
}
