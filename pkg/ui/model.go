package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/aiyaulmo/verksamhetscykel/pkg/carousel"
	"github.com/aiyaulmo/verksamhetscykel/pkg/export"
	"github.com/aiyaulmo/verksamhetscykel/pkg/layout"
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
	"github.com/aiyaulmo/verksamhetscykel/pkg/selection"
	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

// SplitViewThreshold is the terminal width above which the detail panel is
// shown side by side with the event list.
const SplitViewThreshold = 100

// focus represents which UI element has keyboard focus
type focus int

const (
	focusList focus = iota
	focusDetail
	focusHelp
	focusQuitConfirm
)

// DisclosureMsg is a fired carousel auto-advance timer.
type DisclosureMsg struct {
	Disclosure carousel.Disclosure
}

// disclosureCmds schedules every armed disclosure as a tick command.
func disclosureCmds(ds []carousel.Disclosure) tea.Cmd {
	if len(ds) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(ds))
	for i, d := range ds {
		d := d
		cmds[i] = tea.Tick(d.After, func(time.Time) tea.Msg {
			return DisclosureMsg{Disclosure: d}
		})
	}
	return tea.Batch(cmds...)
}

// Model is the main Bubble Tea model for the planning wheel viewer
type Model struct {
	// Data
	doc      *model.Document
	events   []model.Event
	scene    layout.Scene
	engine   *layout.Engine
	resolver *wheel.Resolver

	// Interaction state
	sel  *selection.State
	proj selection.Projection
	car  *carousel.Controller

	// UI Components
	list     list.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	theme    Theme

	// Focus and View State
	focused         focus
	isSplitView     bool
	showDetails     bool
	showHelp        bool
	showQuitConfirm bool
	ready           bool
	width           int
	height          int

	// Status message (for temporary feedback)
	statusMsg     string
	statusIsError bool
}

// NewModel creates a new Model from a loaded document
func NewModel(doc *model.Document) Model {
	engine := layout.NewEngine(doc.Config, nil)
	resolver := wheel.NewResolver(wheel.GeometryFrom(doc.Config))

	events := doc.VisibleEvents()
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].ID < events[j].ID
	})
	scene := engine.Layout(events)

	sel := selection.New()
	proj := selection.Project(sel, engine.Periods)

	theme := DefaultTheme(lipgloss.NewRenderer(os.Stdout))

	items := make([]list.Item, len(events))
	for i := range events {
		items[i] = EventItem{Event: events[i]}
	}

	delegate := EventDelegate{Theme: theme, Projection: proj, Resolver: resolver}
	l := list.New(items, delegate, 0, 0)
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle()
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.Styles.FilterPrompt = lipgloss.NewStyle().Foreground(theme.Primary)
	l.Styles.FilterCursor = lipgloss.NewStyle().Foreground(theme.Primary)
	l.Styles.PaginationStyle = lipgloss.NewStyle()
	l.Styles.HelpStyle = lipgloss.NewStyle()

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return Model{
		doc:      doc,
		events:   events,
		scene:    scene,
		engine:   engine,
		resolver: resolver,
		sel:      sel,
		proj:     proj,
		car:      &carousel.Controller{},
		list:     l,
		renderer: renderer,
		theme:    theme,
		focused:  focusList,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case DisclosureMsg:
		changed, next := m.car.Apply(msg.Disclosure)
		if changed {
			m.updateViewportContent()
		}
		if len(next) > 0 {
			cmds = append(cmds, disclosureCmds(next))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		// Clear status message on any keypress
		m.statusMsg = ""
		m.statusIsError = false

		if m.showQuitConfirm {
			switch msg.String() {
			case "esc", "y", "Y":
				return m, tea.Quit
			default:
				m.showQuitConfirm = false
				m.focused = focusList
				return m, nil
			}
		}

		if (msg.String() == "?" || msg.String() == "f1") && m.list.FilterState() != list.Filtering {
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.focused = focusHelp
			} else {
				m.focused = focusList
			}
			return m, nil
		}

		// If help is showing, any key dismisses it
		if m.focused == focusHelp {
			m.showHelp = false
			m.focused = focusList
			return m, nil
		}

		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "q":
				if m.showDetails && !m.isSplitView {
					m.closeDetail()
					return m, nil
				}
				return m, tea.Quit

			case "esc":
				if m.showDetails && !m.isSplitView {
					m.closeDetail()
					return m, nil
				}
				if m.sel.Mode != selection.AxisNone || len(m.sel.Facets) > 0 {
					m.sel.Reset()
					m.car.Close()
					m.showDetails = false
					m.applyFacets()
					m.refreshProjection()
					return m, nil
				}
				m.showQuitConfirm = true
				m.focused = focusQuitConfirm
				return m, nil

			case "enter":
				return m.toggleSelectedEvent()

			case "n", "right":
				if m.car.IsOpen() {
					m.car.Advance(1)
					m.updateViewportContent()
				}
				return m, nil

			case "N", "left":
				if m.car.IsOpen() {
					m.car.Advance(-1)
					m.updateViewportContent()
				}
				return m, nil

			case "h":
				m.cycleMonthHover(-1)
				return m, nil
			case "l":
				m.cycleMonthHover(1)
				return m, nil
			case "[":
				m.cycleRingHover(-1)
				return m, nil
			case "]":
				m.cycleRingHover(1)
				return m, nil
			case "{":
				m.cyclePeriodHover(-1)
				return m, nil
			case "}":
				m.cyclePeriodHover(1)
				return m, nil

			case "m":
				if idx := m.monthTarget(); idx >= 0 {
					m.sel.ToggleMonth(idx)
					m.refreshProjection()
				}
				return m, nil
			case "r":
				if idx := m.ringTarget(); idx >= 0 {
					m.sel.ToggleRing(idx)
					m.refreshProjection()
				}
				return m, nil
			case "p":
				if idx := m.periodTarget(); idx >= 0 {
					m.sel.TogglePeriod(idx)
					m.refreshProjection()
				}
				return m, nil

			case "u":
				m.sel.LeaveMonth()
				m.sel.LeaveRing()
				m.sel.LeavePeriod()
				m.refreshProjection()
				return m, nil

			case "1":
				m.sel.ToggleFacet(selection.FacetVerksamhet)
				m.applyFacets()
				return m, nil
			case "2":
				m.sel.ToggleFacet(selection.FacetEkonomi)
				m.applyFacets()
				return m, nil
			case "3":
				m.sel.ToggleFacet(selection.FacetKvalitet)
				m.applyFacets()
				return m, nil

			case "x":
				m.sel.Reset()
				m.car.Close()
				m.showDetails = false
				m.applyFacets()
				m.refreshProjection()
				return m, nil

			case "c":
				m.copyEventToClipboard()
				return m, nil

			case "E":
				m.exportSVG()
				return m, nil

			case "tab":
				if m.isSplitView {
					if m.focused == focusList {
						m.focused = focusDetail
					} else {
						m.focused = focusList
					}
				}
				return m, nil
			}

			if m.focused == focusDetail {
				m.viewport, cmd = m.viewport.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			switch m.focused {
			case focusList:
				if m.list.Index() > 0 {
					m.list.Select(m.list.Index() - 1)
					m.syncHoveredEvent()
					if m.isSplitView {
						m.updateViewportContent()
					}
				}
			case focusDetail:
				m.viewport.LineUp(3)
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			switch m.focused {
			case focusList:
				if m.list.Index() < len(m.list.Items())-1 {
					m.list.Select(m.list.Index() + 1)
					m.syncHoveredEvent()
					if m.isSplitView {
						m.updateViewportContent()
					}
				}
			case focusDetail:
				m.viewport.LineDown(3)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.isSplitView = msg.Width > SplitViewThreshold
		m.ready = true

		bodyHeight := m.height - 2 // header + footer
		if bodyHeight < 5 {
			bodyHeight = 5
		}

		if m.isSplitView {
			availWidth := msg.Width - 8
			if availWidth < 10 {
				availWidth = 10
			}
			listInnerWidth := int(float64(availWidth) * 0.4)
			detailInnerWidth := availWidth - listInnerWidth

			listHeight := bodyHeight - 2
			if listHeight < 3 {
				listHeight = 3
			}
			m.list.SetSize(listInnerWidth, listHeight)
			m.viewport = viewport.New(detailInnerWidth, bodyHeight-2)

			if r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(detailInnerWidth),
			); err == nil {
				m.renderer = r
			}
		} else {
			listHeight := bodyHeight
			if listHeight < 3 {
				listHeight = 3
			}
			m.list.SetSize(msg.Width, listHeight)
			m.viewport = viewport.New(msg.Width, bodyHeight)

			if r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width),
			); err == nil {
				m.renderer = r
			}
		}

		m.updateViewportContent()
	}

	// Update list for filtering input, but NOT for WindowSizeMsg
	// (sizing is handled above to account for header/footer)
	if _, isWindowSize := msg.(tea.WindowSizeMsg); !isWindowSize {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		m.syncHoveredEvent()
	}

	if m.isSplitView && m.focused == focusList {
		m.updateViewportContent()
	}

	return m, tea.Batch(cmds...)
}

// toggleSelectedEvent opens or closes the carousel on the highlighted event.
func (m Model) toggleSelectedEvent() (tea.Model, tea.Cmd) {
	e := m.selectedEvent()
	if e == nil {
		return m, nil
	}
	if m.sel.ToggleEvent(e.ID) {
		ds := m.car.Open(e.ID)
		m.showDetails = true
		if !m.isSplitView {
			m.focused = focusDetail
		}
		m.updateViewportContent()
		return m, disclosureCmds(ds)
	}
	m.closeDetail()
	return m, nil
}

func (m *Model) closeDetail() {
	m.car.Close()
	m.sel.ClickedEvent = ""
	m.showDetails = false
	m.focused = focusList
}

// selectedEvent returns the event under the list cursor, or nil.
func (m *Model) selectedEvent() *model.Event {
	item, ok := m.list.SelectedItem().(EventItem)
	if !ok {
		return nil
	}
	e := item.Event
	return &e
}

// syncHoveredEvent mirrors the list cursor into the selection state.
func (m *Model) syncHoveredEvent() {
	if e := m.selectedEvent(); e != nil {
		m.sel.HoverEvent(e.ID)
	} else {
		m.sel.LeaveEvent()
	}
}

func (m *Model) cycleMonthHover(dir int) {
	h := m.sel.HoveredMonth
	if h == selection.NoHover {
		h = 0
		if e := m.selectedEvent(); e != nil && e.Month() >= 0 {
			h = e.Month()
		}
	} else {
		h = (h + dir + 12) % 12
	}
	m.sel.HoverMonth(h)
	m.refreshProjection()
}

func (m *Model) cycleRingHover(dir int) {
	n := m.doc.Config.RingCount
	if n <= 0 {
		return
	}
	h := m.sel.HoveredRing
	if h == selection.NoHover {
		h = 0
	} else {
		h = (h + dir + n) % n
	}
	m.sel.HoverRing(h)
	m.refreshProjection()
}

func (m *Model) cyclePeriodHover(dir int) {
	n := m.engine.Periods.Count()
	if n <= 0 {
		return
	}
	h := m.sel.HoveredPeriod
	if h == selection.NoHover {
		h = 0
	} else {
		h = (h + dir + n) % n
	}
	m.sel.HoverPeriod(h)
	m.refreshProjection()
}

// monthTarget picks the month to toggle: the hovered one, else the month
// of the highlighted event.
func (m *Model) monthTarget() int {
	if m.sel.HoveredMonth != selection.NoHover {
		return m.sel.HoveredMonth
	}
	if e := m.selectedEvent(); e != nil {
		return e.Month()
	}
	return -1
}

func (m *Model) ringTarget() int {
	if m.sel.HoveredRing != selection.NoHover {
		return m.sel.HoveredRing
	}
	if e := m.selectedEvent(); e != nil {
		return m.resolver.Index(e.Ring)
	}
	return -1
}

func (m *Model) periodTarget() int {
	if m.sel.HoveredPeriod != selection.NoHover {
		return m.sel.HoveredPeriod
	}
	if e := m.selectedEvent(); e != nil {
		if w := e.Week(); w > 0 {
			for i := 0; i < m.engine.Periods.Count(); i++ {
				if m.engine.Periods.Contains(i, w) {
					return i
				}
			}
		}
	}
	return -1
}

// refreshProjection recomputes derived activation and pushes it into the
// list delegate.
func (m *Model) refreshProjection() {
	m.proj = selection.Project(m.sel, m.engine.Periods)
	m.list.SetDelegate(EventDelegate{Theme: m.theme, Projection: m.proj, Resolver: m.resolver})
}

// applyFacets relays out the scene and rebuilds the list from the
// facet-filtered events.
func (m *Model) applyFacets() {
	filtered := make([]model.Event, 0, len(m.events))
	for _, e := range m.events {
		if m.sel.FacetVisible(e) {
			filtered = append(filtered, e)
		}
	}
	m.scene = m.engine.Layout(filtered)

	items := make([]list.Item, len(filtered))
	for i := range filtered {
		items[i] = EventItem{Event: filtered[i]}
	}
	m.list.SetItems(items)
	if len(items) > 0 && m.list.Index() >= len(items) {
		m.list.Select(len(items) - 1)
	}
	m.syncHoveredEvent()
}

func (m *Model) updateViewportContent() {
	var e *model.Event
	if m.car.IsOpen() {
		if pe := m.scene.EventByID(m.car.EventID); pe != nil {
			ev := pe.Event
			e = &ev
		}
	}
	if e == nil {
		e = m.selectedEvent()
	}
	if e == nil {
		m.viewport.SetContent("")
		return
	}

	md := eventMarkdown(*e, m.car.Phase)
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			m.viewport.SetContent(rendered)
			return
		}
	}
	m.viewport.SetContent(md)
}

func (m *Model) copyEventToClipboard() {
	e := m.selectedEvent()
	if e == nil {
		m.statusMsg = "Ingen händelse vald"
		m.statusIsError = true
		return
	}
	if err := clipboard.WriteAll(eventClipboardText(*e)); err != nil {
		m.statusMsg = fmt.Sprintf("Kunde inte kopiera: %v", err)
		m.statusIsError = true
		return
	}
	m.statusMsg = fmt.Sprintf("Kopierade %s", e.ID)
}

func (m *Model) exportSVG() {
	path := fmt.Sprintf("verksamhetscykel_%d.svg", m.doc.Config.Year)
	svg := export.NewRenderer(m.doc, &m.proj).Render(&m.scene)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		m.statusMsg = fmt.Sprintf("Export misslyckades: %v", err)
		m.statusIsError = true
		return
	}
	m.statusMsg = fmt.Sprintf("Exporterade %s", path)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var body string
	switch {
	case m.showQuitConfirm:
		body = m.renderQuitConfirm()
	case m.showHelp:
		body = m.renderHelpOverlay()
	case m.isSplitView:
		body = m.renderSplitView()
	case m.showDetails:
		body = m.viewport.View()
	default:
		body = m.list.View()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	finalStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height)

	return finalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m Model) renderHeader() string {
	t := m.theme
	title := t.Header.Render(fmt.Sprintf("Verksamhetscykel %d", m.doc.Config.Year))

	var parts []string
	if m.sel.Mode != selection.AxisNone {
		parts = append(parts, fmt.Sprintf("urval: %s", m.sel.Mode))
	}
	for _, f := range []selection.Facet{selection.FacetVerksamhet, selection.FacetEkonomi, selection.FacetKvalitet} {
		if m.sel.Facets[f] {
			parts = append(parts, string(f))
		}
	}
	if len(parts) == 0 {
		return title
	}
	status := t.Renderer.NewStyle().Foreground(t.Subtext).Render(" " + strings.Join(parts, " · "))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, status)
}

func (m Model) renderSplitView() string {
	t := m.theme

	listBorder := t.Border
	detailBorder := t.Border
	if m.focused == focusList {
		listBorder = t.Primary
	} else if m.focused == focusDetail {
		detailBorder = t.Primary
	}

	listPanel := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(listBorder).
		Padding(0, 1).
		Render(m.list.View())

	detailPanel := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(detailBorder).
		Padding(0, 1).
		Render(m.viewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
}

func (m Model) renderQuitConfirm() string {
	t := m.theme
	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Render("Avsluta? (y/esc bekräftar, annan tangent avbryter)")
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHelpOverlay() string {
	t := m.theme
	help := strings.Join([]string{
		"j/k         bläddra händelser",
		"enter       öppna/stäng händelse",
		"n/N         nästa/föregående panelfas",
		"h/l         hovra månad",
		"[/]         hovra ring",
		"{/}         hovra period",
		"m r p       välj månad / ring / period",
		"u           släpp hover",
		"1 2 3       filter: verksamhet ekonomi kvalitet",
		"x           nollställ urval",
		"c           kopiera händelse",
		"E           exportera SVG",
		"/           sök",
		"q ctrl+c    avsluta",
	}, "\n")
	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(help)
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderFooter() string {
	t := m.theme
	if m.statusMsg != "" {
		style := t.Renderer.NewStyle().Foreground(t.Primary)
		if m.statusIsError {
			style = t.Renderer.NewStyle().Foreground(t.Beslut)
		}
		return style.Render(m.statusMsg)
	}

	hint := "enter öppna · m/r/p välj · 1/2/3 filter · ? hjälp · q avsluta"
	if m.car.IsOpen() {
		hint = fmt.Sprintf("fas %d/%d (%s) · n/N bläddra · enter stäng · ? hjälp",
			int(m.car.Phase)+1, carousel.PhaseCount, m.car.Phase)
	}
	return t.Renderer.NewStyle().Foreground(t.Muted).Render(hint)
}
