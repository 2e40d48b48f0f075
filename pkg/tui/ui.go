// Package tui hosts the Bubble Tea program for the escala TUI.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/progress"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/escala/pkg/countdown"
	"tableflip.dev/escala/pkg/focus"
	"tableflip.dev/escala/pkg/glyph"
	"tableflip.dev/escala/pkg/guide"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/schedule"
	"tableflip.dev/escala/pkg/store"
	"tableflip.dev/escala/pkg/timeutil"
	"tableflip.dev/escala/pkg/tui/theme"
)

type tab int

const (
	tabTimeline tab = iota
	tabBudget
	tabGuide
)

func (t tab) title() string {
	switch t {
	case tabBudget:
		return "Budget"
	case tabGuide:
		return "Guide"
	default:
		return "Timeline"
	}
}

var tabs = []tab{tabTimeline, tabBudget, tabGuide}

// Model contains UI state.
type Model struct {
	ctx         context.Context
	sched       *schedule.Schedule
	persistence store.Persistence
	clock       *countdown.Clock
	coordinator *focus.Coordinator
	changes     <-chan store.Event

	tab    tab
	cursor int
	now    time.Time
	status string

	bar progress.Model

	termWidth  int
	termHeight int

	th theme.Theme
}

// New creates a UI model over a reconciled schedule.
func New(ctx context.Context, sched *schedule.Schedule, clock *countdown.Clock) Model {
	bar := progress.New(progress.WithWidth(12), progress.WithoutPercentage())
	return Model{
		ctx:         ctx,
		sched:       sched,
		clock:       clock,
		coordinator: focus.New(nil),
		tab:         tabTimeline,
		now:         time.Now(),
		status:      "j/k move, x toggle, l locate, tab switch, q quit",
		bar:         bar,
		th:          theme.Default(),
	}
}

type tickMsg time.Time
type storeChangedMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return storeChangedMsg{}
		}
		return nil
	}
}

// Init starts the countdown tick and the snapshot watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForChange())
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tickMsg:
		// Ticks are idempotent recomputations; a missed one self-corrects.
		m.now = time.Time(msg)
		return m, tick()
	case storeChangedMsg:
		if m.persistence != nil {
			schedule.Reconcile(m.sched.Activities(), m.persistence.Load(m.ctx))
			m.status = "refreshed from disk"
		}
		return m, m.waitForChange()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "right":
		m.tab = tabs[(int(m.tab)+1)%len(tabs)]
	case "shift+tab", "left":
		m.tab = tabs[(int(m.tab)+len(tabs)-1)%len(tabs)]
	case "1":
		m.tab = tabTimeline
	case "2":
		m.tab = tabBudget
	case "3":
		m.tab = tabGuide
	case "j", "down":
		if m.tab == tabTimeline && m.cursor < len(m.sched.Activities())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.tab == tabTimeline && m.cursor > 0 {
			m.cursor--
		}
	case "x", "enter":
		if m.tab == tabTimeline {
			m = m.toggleSelected()
		}
	case "l":
		if m.tab == tabTimeline {
			m = m.locateSelected()
		}
	}
	return m, nil
}

func (m Model) selected() *itinerary.Activity {
	acts := m.sched.Activities()
	if m.cursor < 0 || m.cursor >= len(acts) {
		return nil
	}
	return acts[m.cursor]
}

func (m Model) toggleSelected() Model {
	a := m.selected()
	if a == nil {
		return m
	}
	toggled, err := m.sched.Toggle(a.ID)
	if err != nil {
		m.status = "toggle failed: " + err.Error()
		return m
	}
	if toggled.Completed {
		m.status = toggled.Title + " done"
	} else {
		m.status = toggled.Title + " pending again"
	}
	return m
}

func (m Model) locateSelected() Model {
	a := m.selected()
	if a == nil {
		return m
	}
	m.coordinator.Request(a.Coords, a.EndCoords)
	if c, ok := m.coordinator.Last(); ok {
		m.status = guide.DirectionsURL(c)
	}
	return m
}

// View renders the header, the active tab body, and the footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.tabStrip())
	b.WriteString("\n\n")
	switch m.tab {
	case tabBudget:
		b.WriteString(m.budgetView())
	case tabGuide:
		b.WriteString(m.guideView())
	default:
		b.WriteString(m.timelineView())
	}
	b.WriteString("\n")
	b.WriteString(m.th.Footer.Render(m.status))
	return b.String()
}

func (m Model) header() string {
	h := m.th.Header
	left := h.Title.Render("PORT CALL GENOVA") + " " + h.Date.Render(itinerary.PortDate)
	display := m.clock.Display(m.now)
	right := h.Countdown.Render(display)
	if display == countdown.Arrived {
		right = h.Arrived.Render(display)
	}
	return left + "   " + right
}

func (m Model) tabStrip() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		s := m.th.Tab.Inactive
		if t == m.tab {
			s = m.th.Tab.Active
		}
		parts = append(parts, s.Render(t.title()))
	}
	return strings.Join(parts, m.th.FooterDim.Render(" · "))
}

func (m Model) timelineView() string {
	acts := m.sched.Activities()
	if len(acts) == 0 {
		return m.th.Timeline.Meta.Render("no activities")
	}

	var b strings.Builder
	for i, a := range acts {
		if gap := m.sched.GapBefore(i); gap > 0 {
			label := "walk"
			if gap > 30 {
				label = "free stroll"
			}
			b.WriteString(m.th.Timeline.Transfer.Render(fmt.Sprintf(
				"      %s %s transfer (%s)", glyph.Transfer, label, timeutil.FormatMinutes(gap))))
			b.WriteString("\n")
		}

		prefix := "  "
		if i == m.cursor {
			prefix = "→ "
		}

		style := m.th.Timeline.Normal
		marker := glyph.Pending.String()
		switch itinerary.StatusOf(a) {
		case itinerary.StatusCompleted:
			style = m.th.Timeline.Completed
			marker = glyph.Done.String()
		case itinerary.StatusCritical:
			style = m.th.Timeline.Critical
			marker = glyph.Critical.String()
		}
		if i == m.cursor {
			style = style.Inherit(m.th.Timeline.Selected)
		}

		b.WriteString(prefix + marker + " " + style.Render(fmt.Sprintf(
			"%s - %s  %s", a.StartTime, a.EndTime, a.Title)))
		b.WriteString("\n")

		pct := m.sched.Progress(a, m.now)
		b.WriteString("      " + m.bar.ViewAs(pct/100) + "  " +
			m.th.Timeline.Meta.Render(fmt.Sprintf("%s, %s", a.LocationName, a.Span())))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) budgetView() string {
	paid := m.sched.Paid()
	if len(paid) == 0 {
		return m.th.Timeline.Meta.Render("no planned spend")
	}
	var b strings.Builder
	for _, a := range paid {
		b.WriteString(fmt.Sprintf("  %-38s %s\n", a.Title,
			m.th.Timeline.Meta.Render(fmt.Sprintf("€%.2f", a.PriceEUR))))
	}
	b.WriteString(fmt.Sprintf("\n  total €%.2f\n", m.sched.TotalEUR()))
	return b.String()
}

func (m Model) guideView() string {
	var b strings.Builder
	s := guide.Summarize(m.sched.Activities())
	b.WriteString(fmt.Sprintf("  window %s, active %s, %.1f km, %d points of interest\n\n",
		s.TotalWindow, s.ActiveTime, s.WalkingKM, s.POICount))
	for _, p := range guide.Phrasebook {
		b.WriteString(fmt.Sprintf("  %-18s %-24s %s\n", p.Word,
			m.th.Timeline.Meta.Render("\""+p.Simplified+"\""), p.Meaning))
	}
	b.WriteString("\n  " + guide.SOSMessage(nil) + "\n")
	return b.String()
}

// Run launches the TUI over the given persistence.
func Run(ctx context.Context, p store.Persistence) error {
	sched := schedule.New(ctx, itinerary.Genova(), p)
	clock, err := countdown.New(itinerary.OnboardTime)
	if err != nil {
		return err
	}

	m := New(ctx, sched, clock)
	m.persistence = p
	if p != nil {
		if ch, err := p.Watch(ctx); err == nil {
			m.changes = ch
		}
	}

	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
