package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/dataset"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/logging"
)

// ViewState is the dashboard screen.
type ViewState int

// Dashboard screens.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Tab is a dashboard pane.
type Tab int

// Dashboard panes, in tab order.
const (
	TabStages Tab = iota
	TabCompare
	TabAlerts
	numTabs
)

// String returns the tab title.
func (t Tab) String() string {
	switch t {
	case TabStages:
		return "Stages"
	case TabCompare:
		return "Compare"
	case TabAlerts:
		return "Alerts"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyTab   = "tab"
	keyLeft  = "left"
	keyRight = "right"
	keyH     = "h"
	keyL     = "l"
)

// Layout.
const (
	defaultWidth   = 100
	defaultHeight  = 30
	minTableHeight = 3
	chrome         = 8
)

// DashboardModel is the Bubble Tea model of `carbontrace dashboard`.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	ctx        context.Context
	catalog    *dataset.Catalog
	thresholds classify.Thresholds
	products   []dataset.Product

	state   ViewState
	tab     Tab
	product int

	rows     []emissions.StageBreakdown
	ranked   []emissions.RankedProduct
	alerts   emissions.AlertReport
	metrics  emissions.Metrics
	table    table.Model
	selected int

	width  int
	height int
}

// NewDashboardModel builds a dashboard over cat opened on product. An empty
// product opens the first one.
func NewDashboardModel(
	ctx context.Context,
	cat *dataset.Catalog,
	th classify.Thresholds,
	product string,
) (DashboardModel, error) {
	m := DashboardModel{
		ctx:        ctx,
		catalog:    cat,
		thresholds: th,
		products:   cat.Products(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	if product != "" {
		p, err := cat.Lookup(product)
		if err != nil {
			return DashboardModel{}, err
		}
		for i := range m.products {
			if m.products[i].ID == p.ID {
				m.product = i
			}
		}
	}
	m.ranked = emissions.Rank(cat.Comparison())
	m.load()
	return m, nil
}

// Init initializes the model (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table = m.buildStageTable()
		return m, nil
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m DashboardModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyTab:
		m.tab = (m.tab + 1) % numTabs
		return m, nil
	case "1", "2", "3":
		m.tab = Tab(keyMsg.String()[0] - '1')
		return m, nil
	case keyRight, keyL:
		m.switchProduct(1)
		return m, nil
	case keyLeft, keyH:
		m.switchProduct(-1)
		return m, nil
	case keyEnter:
		if m.tab == TabStages && len(m.rows) > 0 {
			m.selected = m.table.Cursor()
			m.state = ViewStateDetail
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m DashboardModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

// switchProduct moves the product selection by delta, wrapping around.
func (m *DashboardModel) switchProduct(delta int) {
	n := len(m.products)
	if n == 0 {
		return
	}
	m.product = ((m.product+delta)%n + n) % n
	m.load()
}

// load recomputes everything derived from the selected product.
func (m *DashboardModel) load() {
	if len(m.products) == 0 {
		return
	}
	p := m.products[m.product]
	m.rows = emissions.Breakdown(p.Stages, m.thresholds)
	m.metrics, _ = emissions.CalculateMetrics(p.Stages)
	m.alerts, _ = emissions.EvaluateAlerts(p.Stages)
	m.selected = 0
	m.table = m.buildStageTable()

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Str("component", "tui").
		Str("product", p.ID).
		Int("stage_count", len(p.Stages)).
		Msg("dashboard product loaded")
}

// Product returns the selected product.
func (m DashboardModel) Product() dataset.Product {
	if len(m.products) == 0 {
		return dataset.Product{}
	}
	return m.products[m.product]
}

// buildStageTable creates the stage table for the selected product.
func (m DashboardModel) buildStageTable() table.Model {
	columns := []table.Column{
		{Title: "Stage", Width: 16},     //nolint:mnd // Column width.
		{Title: "Emissions", Width: 16}, //nolint:mnd // Column width.
		{Title: "Share", Width: 8},      //nolint:mnd // Column width.
		{Title: "Impact", Width: 16},    //nolint:mnd // Column width.
		{Title: "Severity", Width: 9},   //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			r.Stage,
			r.Tooltip,
			greenops.FormatShare(r.Share),
			r.Tier.Label(),
			string(r.Severity),
		}
	}

	height := m.height - len(m.rows) - chrome*2
	if height < minTableHeight {
		height = minTableHeight
	}
	if height > len(rows)+1 {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
